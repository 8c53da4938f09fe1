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

// Package metrics provides Prometheus metrics for taskd.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/projecttaskd/taskd/internal/build"
)

// Metrics provide Prometheus metrics for the app.
type Metrics struct {
	buildInfoGauge *prometheus.GaugeVec

	tasksTotal          *prometheus.CounterVec
	taskDurationSummary *prometheus.SummaryVec

	cacheHitsTotal      prometheus.Counter
	cacheMissesTotal    prometheus.Counter
	cacheEvictionsTotal prometheus.Counter
}

const (
	BuildInfoGauge = "taskd_build_info"

	TasksTotal          = "taskd_tasks_total"
	TaskDurationSummary = "taskd_task_duration_seconds"

	CacheHitsTotal      = "taskd_result_cache_hits_total"
	CacheMissesTotal    = "taskd_result_cache_misses_total"
	CacheEvictionsTotal = "taskd_result_cache_evictions_total"
)

// NewMetrics creates a new set of metrics and registers them with
// the supplied registry.
func NewMetrics(registry *prometheus.Registry) *Metrics {
	m := Metrics{
		buildInfoGauge: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: BuildInfoGauge,
				Help: "Build information for taskd. Labels include the branch and git SHA that taskd was built from, and the taskd version.",
			},
			[]string{"branch", "revision", "version"},
		),
		tasksTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: TasksTotal,
				Help: "Total number of task submissions by method and terminal status.",
			},
			[]string{"method", "status"},
		),
		taskDurationSummary: prometheus.NewSummaryVec(
			prometheus.SummaryOpts{
				Name:       TaskDurationSummary,
				Help:       "Handler execution time in seconds.",
				Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
			},
			[]string{"method"},
		),
		cacheHitsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: CacheHitsTotal,
				Help: "Total number of result cache lookups that found an entry.",
			},
		),
		cacheMissesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: CacheMissesTotal,
				Help: "Total number of result cache lookups that found nothing.",
			},
		),
		cacheEvictionsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: CacheEvictionsTotal,
				Help: "Total number of results evicted from the cache.",
			},
		),
	}
	info := build.Current()
	m.buildInfoGauge.WithLabelValues(info.Branch, info.Sha, info.Version).Set(1)
	m.register(registry)
	return &m
}

// register registers the Metrics with the supplied registry.
func (m *Metrics) register(registry *prometheus.Registry) {
	registry.MustRegister(
		m.buildInfoGauge,
		m.tasksTotal,
		m.taskDurationSummary,
		m.cacheHitsTotal,
		m.cacheMissesTotal,
		m.cacheEvictionsTotal,
	)
}

// TaskCompleted records one finished submission.
func (m *Metrics) TaskCompleted(method, status string, duration time.Duration) {
	m.tasksTotal.WithLabelValues(method, status).Inc()
	m.taskDurationSummary.WithLabelValues(method).Observe(duration.Seconds())
}

// CacheHit records a result cache lookup that found an entry.
func (m *Metrics) CacheHit() { m.cacheHitsTotal.Inc() }

// CacheMiss records a result cache lookup that found nothing.
func (m *Metrics) CacheMiss() { m.cacheMissesTotal.Inc() }

// CacheEviction records a result falling out of the cache.
func (m *Metrics) CacheEviction() { m.cacheEvictionsTotal.Inc() }

// Handler returns a http Handler for a metrics endpoint.
func Handler(registry *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
