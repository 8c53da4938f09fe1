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

// Package fixture provides logging helpers for taskd's test suites.
package fixture

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
)

type testWriter struct {
	t *testing.T
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Logf("%s", p)
	return len(p), nil
}

// NewTestLogger returns a debug-level logger routed through
// (*testing.T).Logf, with timestamps suppressed so per-task log lines
// read cleanly in failure output.
func NewTestLogger(t *testing.T) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(testWriter{t})
	log.SetLevel(logrus.DebugLevel)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return log
}

// NewTestEntry wraps NewTestLogger as an entry for APIs that take
// *logrus.Entry, such as the gRPC request logging interceptor.
func NewTestEntry(t *testing.T) *logrus.Entry {
	return logrus.NewEntry(NewTestLogger(t))
}

// NewDiscardLogger returns a logger that drops everything.
func NewDiscardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// Capture returns a debug-level logger that records entries in memory,
// so tests can assert on the task_id and method fields the scheduler
// attaches to its log lines.
func Capture() (*logrus.Logger, *logrustest.Hook) {
	log, hook := logrustest.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	return log, hook
}
