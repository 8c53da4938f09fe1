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

// Package tasks registers the built-in handler suite.
package tasks

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/projecttaskd/taskd/internal/registry"
	"github.com/projecttaskd/taskd/internal/value"
)

// Register installs the built-in handlers. It must run before the RPC
// surface starts serving.
func Register(r *registry.Registry) error {
	sync := map[string]registry.SyncFunc{
		"add":       add,
		"concat":    concat,
		"uppercase": uppercase,
		"join":      join,
	}
	async := map[string]registry.AsyncFunc{
		"fibonacci": fibonacci,
		"sleep":     sleep,
	}

	for name, fn := range sync {
		if err := r.RegisterSync(name, fn); err != nil {
			return err
		}
	}
	for name, fn := range async {
		if err := r.RegisterAsync(name, fn); err != nil {
			return err
		}
	}
	return nil
}

// add sums its int32 arguments.
func add(args []value.Value) (string, error) {
	var sum int32
	for i, a := range args {
		n, ok := a.(value.Int32)
		if !ok {
			return "", fmt.Errorf("add: argument %d: want int32, got %s", i, a)
		}
		sum += int32(n)
	}
	return strconv.FormatInt(int64(sum), 10), nil
}

// concat joins its string arguments in order.
func concat(args []value.Value) (string, error) {
	var b strings.Builder
	for i, a := range args {
		s, ok := a.(value.String)
		if !ok {
			return "", fmt.Errorf("concat: argument %d: want string, got %s", i, a)
		}
		b.WriteString(string(s))
	}
	return b.String(), nil
}

// uppercase maps its single string argument to upper case.
func uppercase(args []value.Value) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("uppercase: want 1 argument, got %d", len(args))
	}
	s, ok := args[0].(value.String)
	if !ok {
		return "", fmt.Errorf("uppercase: want string, got %s", args[0])
	}
	return strings.ToUpper(string(s)), nil
}

// join renders the elements of its list argument separated by its
// string argument.
func join(args []value.Value) (string, error) {
	if len(args) != 2 {
		return "", fmt.Errorf("join: want 2 arguments, got %d", len(args))
	}
	list, ok := args[0].(value.List)
	if !ok {
		return "", fmt.Errorf("join: argument 0: want list, got %s", args[0])
	}
	sep, ok := args[1].(value.String)
	if !ok {
		return "", fmt.Errorf("join: argument 1: want string, got %s", args[1])
	}
	parts := make([]string, len(list))
	for i, el := range list {
		parts[i] = el.String()
	}
	return strings.Join(parts, string(sep)), nil
}

// fibonacci computes the nth Fibonacci number, with fibonacci(1) == 1.
func fibonacci(_ context.Context, args []value.Value) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("fibonacci: want 1 argument, got %d", len(args))
	}
	n, ok := args[0].(value.Int32)
	if !ok {
		return "", fmt.Errorf("fibonacci: want int32, got %s", args[0])
	}
	if n < 0 {
		return "", fmt.Errorf("fibonacci: want n >= 0, got %d", n)
	}
	var a, b uint64 = 0, 1
	for i := value.Int32(0); i < n; i++ {
		a, b = b, a+b
	}
	return strconv.FormatUint(a, 10), nil
}

// sleep pauses for its argument in milliseconds, honouring ctx.
func sleep(ctx context.Context, args []value.Value) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("sleep: want 1 argument, got %d", len(args))
	}
	ms, ok := args[0].(value.Int64)
	if !ok {
		return "", fmt.Errorf("sleep: want int64 milliseconds, got %s", args[0])
	}
	select {
	case <-time.After(time.Duration(ms) * time.Millisecond):
		return strconv.FormatInt(int64(ms), 10), nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
