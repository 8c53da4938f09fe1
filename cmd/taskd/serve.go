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

package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/projecttaskd/taskd/internal/build"
	"github.com/projecttaskd/taskd/internal/cache"
	"github.com/projecttaskd/taskd/internal/debug"
	"github.com/projecttaskd/taskd/internal/executor"
	"github.com/projecttaskd/taskd/internal/health"
	"github.com/projecttaskd/taskd/internal/httpsvc"
	"github.com/projecttaskd/taskd/internal/metrics"
	"github.com/projecttaskd/taskd/internal/registry"
	"github.com/projecttaskd/taskd/internal/server"
	"github.com/projecttaskd/taskd/internal/tasks"
	"github.com/projecttaskd/taskd/internal/workgroup"
	"github.com/projecttaskd/taskd/pkg/config"
)

// shutdownGracePeriod bounds how long in-flight RPCs may drain after a
// termination signal before the listener is torn down.
const shutdownGracePeriod = 15 * time.Second

// registerServe registers the serve subcommand and flags
// with the Application provided.
func registerServe(app *kingpin.Application) (*kingpin.CmdClause, *serveContext) {
	serve := app.Command("serve", "Serve the task scheduler API.")

	// Configuration precedence: config file, overridden by cli flags.
	// As -c is itself a cli flag we don't know its value til cli flags
	// have been parsed, so a post parse action loads the file and
	// main parses the cli flags a second time on top.
	var (
		configFile string
		parsed     bool
	)
	ctx := newServeContext()

	parseConfig := func(_ *kingpin.ParseContext) error {
		if parsed || configFile == "" {
			// if there is no config file supplied, or we've
			// already parsed it, return immediately.
			return nil
		}

		f, err := os.Open(configFile)
		if err != nil {
			return err
		}
		defer f.Close()

		params, err := config.Parse(f)
		if err != nil {
			return err
		}

		if err := params.Validate(); err != nil {
			return fmt.Errorf("invalid taskd configuration: %w", err)
		}

		parsed = true
		ctx.Config = *params

		return nil
	}

	serve.Flag("config-path", "Path to base configuration.").Short('c').PlaceHolder("/path/to/file").Action(parseConfig).ExistingFileVar(&configFile)

	serve.Flag("address", "Task gRPC API address.").PlaceHolder("<ipaddr>").StringVar(&ctx.Config.Address)
	serve.Flag("port", "Task gRPC API port.").PlaceHolder("<port>").IntVar(&ctx.Config.Port)

	serve.Flag("cafile", "CA bundle file name used to verify client certificates.").Envar("TASKD_CAFILE").PlaceHolder("/path/to/file").StringVar(&ctx.Config.TLS.CAFile)
	serve.Flag("cert-file", "Server certificate file name for serving gRPC over TLS.").Envar("TASKD_CERT_FILE").PlaceHolder("/path/to/file").StringVar(&ctx.Config.TLS.CertFile)
	serve.Flag("key-file", "Server key file name for serving gRPC over TLS.").Envar("TASKD_KEY_FILE").PlaceHolder("/path/to/file").StringVar(&ctx.Config.TLS.KeyFile)

	serve.Flag("http-address", "Address the metrics HTTP endpoint will bind to.").PlaceHolder("<ipaddr>").StringVar(&ctx.Config.Metrics.Address)
	serve.Flag("http-port", "Port the metrics HTTP endpoint will bind to.").PlaceHolder("<port>").IntVar(&ctx.Config.Metrics.Port)
	serve.Flag("health-address", "Address the health HTTP endpoint will bind to.").PlaceHolder("<ipaddr>").StringVar(&ctx.Config.Health.Address)
	serve.Flag("health-port", "Port the health HTTP endpoint will bind to.").PlaceHolder("<port>").IntVar(&ctx.Config.Health.Port)
	serve.Flag("debug-http-address", "Address the debug http endpoint will bind to.").PlaceHolder("<ipaddr>").StringVar(&ctx.Config.Debug.Address)
	serve.Flag("debug-http-port", "Port the debug http endpoint will bind to.").PlaceHolder("<port>").IntVar(&ctx.Config.Debug.Port)

	serve.Flag("debug", "Enable debug logging.").Short('d').BoolVar(&ctx.Config.DebugLog)

	return serve, ctx
}

// doServe runs the taskd serve subcommand.
func doServe(log *logrus.Logger, ctx *serveContext) error {
	log.WithFields(build.Current().Fields()).Info("starting taskd")

	// Set up workgroup runner.
	var g workgroup.Group

	// Set up Prometheus registry and register base metrics.
	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	promRegistry.MustRegister(collectors.NewGoCollector())

	taskMetrics := metrics.NewMetrics(promRegistry)

	// Build the method tables. The registry is frozen once serving
	// begins; registration failures here are programming errors.
	methods := registry.New()
	if err := tasks.Register(methods); err != nil {
		return fmt.Errorf("failed to register task handlers: %w", err)
	}

	resultCache := cache.New(cache.DefaultCapacity, cache.DefaultShards, func(string) {
		taskMetrics.CacheEviction()
	})

	exec := &executor.Executor{
		Registry:    methods,
		Cache:       resultCache,
		Metrics:     taskMetrics,
		FieldLogger: log.WithField("context", "executor"),
	}

	// Create metrics service and register with workgroup.
	metricsvc := httpsvc.Service{
		Addr:        ctx.Config.Metrics.Address,
		Port:        ctx.Config.Metrics.Port,
		FieldLogger: log.WithField("context", "metricsvc"),
	}
	metricsvc.ServeMux.Handle("/metrics", metrics.Handler(promRegistry))

	if ctx.Config.Health.Address == ctx.Config.Metrics.Address && ctx.Config.Health.Port == ctx.Config.Metrics.Port {
		h := health.Handler()
		metricsvc.ServeMux.Handle("/health", h)
		metricsvc.ServeMux.Handle("/healthz", h)
	} else {
		// Create a separate health service if required.
		healthsvc := httpsvc.Service{
			Addr:        ctx.Config.Health.Address,
			Port:        ctx.Config.Health.Port,
			FieldLogger: log.WithField("context", "healthsvc"),
		}
		h := health.Handler()
		healthsvc.ServeMux.Handle("/health", h)
		healthsvc.ServeMux.Handle("/healthz", h)
		g.Add(healthsvc.Start)
	}
	g.Add(metricsvc.Start)

	// Create debug service and register with workgroup.
	debugsvc := debug.Service{
		Service: httpsvc.Service{
			Addr:        ctx.Config.Debug.Address,
			Port:        ctx.Config.Debug.Port,
			FieldLogger: log.WithField("context", "debugsvc"),
		},
		Registry: methods,
	}
	g.Add(debugsvc.Start)

	// Register the task scheduler gRPC API with the workgroup.
	g.AddContext(func(taskCtx context.Context) error {
		slog := log.WithField("context", "taskserver")

		grpcServer := server.NewServer(
			server.NewTaskServer(slog, exec),
			logrus.NewEntry(log),
			promRegistry,
			ctx.grpcOptions(slog)...,
		)

		addr := net.JoinHostPort(ctx.Config.Address, strconv.Itoa(ctx.Config.Port))
		l, err := net.Listen("tcp", addr)
		if err != nil {
			return err
		}

		slog = slog.WithField("address", addr)
		switch {
		case ctx.insecure():
			slog.Warn("serving without TLS; submissions are neither encrypted nor authenticated")
		case ctx.mutualTLS():
			slog = slog.WithField("client-auth", "require-and-verify")
		}

		slog.Info("started task scheduler server")
		defer slog.Info("stopped task scheduler server")

		go func() {
			<-taskCtx.Done()

			// Drain in-flight RPCs up to the grace period, then
			// abort whatever remains.
			drained := make(chan struct{})
			go func() {
				grpcServer.GracefulStop()
				close(drained)
			}()
			select {
			case <-drained:
			case <-time.After(shutdownGracePeriod):
				grpcServer.Stop()
			}
		}()

		return grpcServer.Serve(l)
	})

	// Set up SIGTERM handler for graceful shutdown.
	g.Add(func(stop <-chan struct{}) error {
		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGTERM, syscall.SIGINT)
		select {
		case sig := <-c:
			log.WithField("context", "sigterm-handler").WithField("signal", sig).Info("shutting down")
		case <-stop:
			// Do nothing. The group is shutting down.
		}
		return nil
	})

	// GO!
	return g.Run(context.Background())
}
