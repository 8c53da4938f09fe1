// Copyright Project Taskd Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package server provides the gRPC implementation of the TaskScheduler
// API.
package server

import (
	"context"

	grpc_middleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpc_logrus "github.com/grpc-ecosystem/go-grpc-middleware/logging/logrus"
	grpc_prometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	taskv1 "github.com/projecttaskd/taskd/apis/task/v1"
	"github.com/projecttaskd/taskd/internal/executor"
)

// NewServer returns a *grpc.Server serving the TaskScheduler API. If
// registry is non-nil gRPC server metrics will be automatically
// configured and enabled; if log is non-nil each RPC is logged at debug
// level.
func NewServer(srv taskv1.TaskSchedulerServer, log *logrus.Entry, registry *prometheus.Registry, opts ...grpc.ServerOption) *grpc.Server {
	var unary []grpc.UnaryServerInterceptor

	if log != nil {
		unary = append(unary, grpc_logrus.UnaryServerInterceptor(log,
			grpc_logrus.WithLevels(func(codes.Code) logrus.Level { return logrus.DebugLevel }),
		))
	}

	var metrics *grpc_prometheus.ServerMetrics
	if registry != nil {
		metrics = grpc_prometheus.NewServerMetrics()
		registry.MustRegister(metrics)
		unary = append(unary, metrics.UnaryServerInterceptor())
	}

	if len(unary) > 0 {
		opts = append(opts, grpc.UnaryInterceptor(grpc_middleware.ChainUnaryServer(unary...)))
	}

	g := grpc.NewServer(opts...)
	taskv1.RegisterTaskSchedulerServer(g, srv)

	if metrics != nil {
		metrics.InitializeMetrics(g)
	}

	return g
}

// taskServer translates transport frames to and from the execution
// core. It validates gross malformation only; everything else surfaces
// as a FAILED task response, not an RPC error.
type taskServer struct {
	taskv1.UnimplementedTaskSchedulerServer

	logrus.FieldLogger
	executor *executor.Executor
}

// NewTaskServer returns the TaskScheduler handler backed by exec.
func NewTaskServer(log logrus.FieldLogger, exec *executor.Executor) taskv1.TaskSchedulerServer {
	return &taskServer{
		FieldLogger: log,
		executor:    exec,
	}
}

func (s *taskServer) SubmitTask(ctx context.Context, req *taskv1.TaskRequest) (*taskv1.TaskResponse, error) {
	if req.GetTaskId() == "" {
		return nil, status.Error(codes.InvalidArgument, "task_id must not be empty")
	}
	if req.GetMethod() == "" {
		return nil, status.Error(codes.InvalidArgument, "method must not be empty")
	}
	return s.executor.Submit(ctx, req), nil
}

func (s *taskServer) GetResult(_ context.Context, req *taskv1.ResultRequest) (*taskv1.ResultResponse, error) {
	if req.GetTaskId() == "" {
		return nil, status.Error(codes.InvalidArgument, "task_id must not be empty")
	}
	return s.executor.GetResult(req.GetTaskId()), nil
}
