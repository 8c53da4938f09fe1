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

// Package registry maps method names to task handlers.
package registry

import (
	"context"
	"fmt"

	"github.com/projecttaskd/taskd/internal/value"
)

// SyncFunc runs to completion on the caller's goroutine and returns the
// task's result string.
type SyncFunc func(args []value.Value) (string, error)

// AsyncFunc runs on its own goroutine; the execution core awaits its
// return. Handlers that perform I/O should be registered async.
type AsyncFunc func(ctx context.Context, args []value.Value) (string, error)

// Kind discriminates the two handler variants.
type Kind int

const (
	Sync Kind = iota
	Async
)

func (k Kind) String() string {
	if k == Async {
		return "async"
	}
	return "sync"
}

// Handler is a registered task handler. Exactly one of Sync or Async is
// set, according to Kind.
type Handler struct {
	Kind  Kind
	Sync  SyncFunc
	Async AsyncFunc
}

// Registry holds the method tables. Registration happens during startup,
// before the RPC surface accepts traffic; lookups after that point need
// no locking.
type Registry struct {
	sync  map[string]SyncFunc
	async map[string]AsyncFunc
}

func New() *Registry {
	return &Registry{
		sync:  map[string]SyncFunc{},
		async: map[string]AsyncFunc{},
	}
}

// RegisterSync binds name to a synchronous handler. Names are unique
// across both tables.
func (r *Registry) RegisterSync(name string, fn SyncFunc) error {
	if err := r.checkName(name); err != nil {
		return err
	}
	r.sync[name] = fn
	return nil
}

// RegisterAsync binds name to an asynchronous handler. Names are unique
// across both tables.
func (r *Registry) RegisterAsync(name string, fn AsyncFunc) error {
	if err := r.checkName(name); err != nil {
		return err
	}
	r.async[name] = fn
	return nil
}

func (r *Registry) checkName(name string) error {
	if name == "" {
		return fmt.Errorf("registry: empty method name")
	}
	if _, ok := r.sync[name]; ok {
		return fmt.Errorf("registry: method %q already registered", name)
	}
	if _, ok := r.async[name]; ok {
		return fmt.Errorf("registry: method %q already registered", name)
	}
	return nil
}

// Lookup returns the handler bound to name.
func (r *Registry) Lookup(name string) (Handler, bool) {
	if fn, ok := r.sync[name]; ok {
		return Handler{Kind: Sync, Sync: fn}, true
	}
	if fn, ok := r.async[name]; ok {
		return Handler{Kind: Async, Async: fn}, true
	}
	return Handler{}, false
}

// Methods returns the registered method names and their kinds.
func (r *Registry) Methods() map[string]Kind {
	m := make(map[string]Kind, len(r.sync)+len(r.async))
	for name := range r.sync {
		m[name] = Sync
	}
	for name := range r.async {
		m[name] = Async
	}
	return m
}
