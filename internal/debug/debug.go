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

// Package debug provides http endpoints for pprof debugging and for
// inspecting the registered method table.
package debug

import (
	"encoding/json"
	"net/http"
	"net/http/pprof"
	"sort"

	"github.com/projecttaskd/taskd/internal/httpsvc"
	"github.com/projecttaskd/taskd/internal/registry"
)

// Service serves various http endpoints including /debug/pprof.
type Service struct {
	httpsvc.Service

	Registry *registry.Registry
}

// Start fulfills the g.Add contract.
// When stop is closed the http server will shutdown.
func (svc *Service) Start(stop <-chan struct{}) error {
	registerProfile(&svc.ServeMux)
	registerMethodTable(&svc.ServeMux, svc.Registry)
	return svc.Service.Start(stop)
}

func registerProfile(mux *http.ServeMux) {
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	mux.Handle("/debug/pprof/block", pprof.Handler("block"))
	mux.Handle("/debug/pprof/goroutine", pprof.Handler("goroutine"))
	mux.Handle("/debug/pprof/heap", pprof.Handler("heap"))
	mux.Handle("/debug/pprof/threadcreate", pprof.Handler("threadcreate"))
}

type methodEntry struct {
	Method string `json:"method"`
	Kind   string `json:"kind"`
}

func registerMethodTable(mux *http.ServeMux, reg *registry.Registry) {
	mux.HandleFunc("/debug/methods", func(w http.ResponseWriter, r *http.Request) {
		methods := reg.Methods()
		entries := make([]methodEntry, 0, len(methods))
		for name, kind := range methods {
			entries = append(entries, methodEntry{Method: name, Kind: kind.String()})
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].Method < entries[j].Method })

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(entries)
	})
}
