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

// Package executor dispatches submitted tasks to registered handlers and
// records their outcomes.
package executor

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	taskv1 "github.com/projecttaskd/taskd/apis/task/v1"
	"github.com/projecttaskd/taskd/internal/cache"
	"github.com/projecttaskd/taskd/internal/codec"
	"github.com/projecttaskd/taskd/internal/metrics"
	"github.com/projecttaskd/taskd/internal/registry"
	"github.com/projecttaskd/taskd/internal/value"
)

// Executor is the execution core. Registry must be frozen before the
// first Submit. Metrics may be nil.
type Executor struct {
	Registry *registry.Registry
	Cache    *cache.ResultCache
	Metrics  *metrics.Metrics

	logrus.FieldLogger
}

// Submit runs one task to completion. Every failure mode produces a
// FAILED response with a diagnostic; Submit itself does not error.
//
// The pipeline is decode args, validate deps, look up the handler,
// execute, record the result. A missing dependency fails immediately;
// there is no waiting or polling. The outcome, success or failure of
// the handler itself, is cached under the request's task id before the
// response is returned, overwriting any previous entry with that id.
func (e *Executor) Submit(ctx context.Context, req *taskv1.TaskRequest) *taskv1.TaskResponse {
	args, err := codec.DecodeAll(req.GetArgs())
	if err != nil {
		return e.failed(req, fmt.Sprintf("arg-decode: %s", err))
	}

	if missing, ok := e.Cache.ContainsAll(dedup(req.GetDeps())); !ok {
		return e.failed(req, fmt.Sprintf("missing dep: %s", missing))
	}

	h, ok := e.Registry.Lookup(req.GetMethod())
	if !ok {
		return e.failed(req, "method not found")
	}
	if (h.Kind == registry.Async) != req.GetIsAsync() {
		return e.failed(req, "method kind mismatch")
	}

	start := time.Now()
	result, err := e.execute(ctx, h, args)

	resp := &taskv1.TaskResponse{
		TaskId: req.GetTaskId(),
		Status: taskv1.Status_SUCCESS,
		Result: result,
	}
	if err != nil {
		resp.Status = taskv1.Status_FAILED
		resp.Result = err.Error()
	}

	e.Cache.Put(req.GetTaskId(), cache.Result{Status: resp.Status, Value: resp.Result})
	if e.Metrics != nil {
		e.Metrics.TaskCompleted(req.GetMethod(), resp.Status.String(), time.Since(start))
	}
	if err != nil {
		e.WithField("task_id", req.GetTaskId()).
			WithField("method", req.GetMethod()).
			WithError(err).
			Debug("task failed")
	}
	return resp
}

// GetResult serves a cached outcome. A miss is PENDING: the cache does
// not distinguish never-submitted from evicted.
func (e *Executor) GetResult(taskID string) *taskv1.ResultResponse {
	r, ok := e.Cache.Get(taskID)
	if !ok {
		if e.Metrics != nil {
			e.Metrics.CacheMiss()
		}
		return &taskv1.ResultResponse{Status: taskv1.Status_PENDING}
	}
	if e.Metrics != nil {
		e.Metrics.CacheHit()
	}
	return &taskv1.ResultResponse{Status: r.Status, Result: r.Value}
}

// execute invokes the handler, converting panics into errors so a
// faulty handler cannot take the process down. A synchronous handler
// runs on the calling goroutine. An asynchronous handler runs on its
// own goroutine and is awaited without regard to ctx: a client that
// disconnects mid-flight still gets its result cached.
func (e *Executor) execute(ctx context.Context, h registry.Handler, args []value.Value) (result string, err error) {
	if h.Kind == registry.Sync {
		defer recoverHandler(&err)
		return h.Sync(args)
	}

	type outcome struct {
		result string
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		var out outcome
		defer func() { done <- out }()
		defer recoverHandler(&out.err)
		out.result, out.err = h.Async(ctx, args)
	}()
	out := <-done
	return out.result, out.err
}

func recoverHandler(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("internal: handler panic: %v", r)
	}
}

func (e *Executor) failed(req *taskv1.TaskRequest, diagnostic string) *taskv1.TaskResponse {
	if e.Metrics != nil {
		e.Metrics.TaskCompleted(req.GetMethod(), taskv1.Status_FAILED.String(), 0)
	}
	e.WithField("task_id", req.GetTaskId()).
		WithField("method", req.GetMethod()).
		Debug(diagnostic)
	return &taskv1.TaskResponse{
		TaskId: req.GetTaskId(),
		Status: taskv1.Status_FAILED,
		Result: diagnostic,
	}
}

// dedup collapses duplicate ids, keeping first-occurrence order so the
// missing-dependency diagnostic is deterministic.
func dedup(ids []string) []string {
	if len(ids) < 2 {
		return ids
	}
	seen := make(map[string]struct{}, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
