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

package tasks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projecttaskd/taskd/internal/registry"
	"github.com/projecttaskd/taskd/internal/value"
)

func TestRegister(t *testing.T) {
	r := registry.New()
	require.NoError(t, Register(r))

	assert.Equal(t, map[string]registry.Kind{
		"add":       registry.Sync,
		"concat":    registry.Sync,
		"uppercase": registry.Sync,
		"join":      registry.Sync,
		"fibonacci": registry.Async,
		"sleep":     registry.Async,
	}, r.Methods())

	// Registration is one-shot; a second pass collides.
	assert.Error(t, Register(r))
}

func TestAdd(t *testing.T) {
	tests := map[string]struct {
		args    []value.Value
		want    string
		wantErr bool
	}{
		"sum":       {args: []value.Value{value.Int32(10), value.Int32(20), value.Int32(30), value.Int32(-5)}, want: "55"},
		"empty":     {args: nil, want: "0"},
		"wrong arg": {args: []value.Value{value.String("x")}, wantErr: true},
		"mixed":     {args: []value.Value{value.Int32(1), value.Int64(2)}, wantErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := add(tc.args)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestConcat(t *testing.T) {
	got, err := concat([]value.Value{value.String("Hello"), value.String(" "), value.String("World")})
	require.NoError(t, err)
	assert.Equal(t, "Hello World", got)

	got, err = concat(nil)
	require.NoError(t, err)
	assert.Equal(t, "", got)

	_, err = concat([]value.Value{value.Int32(1)})
	require.Error(t, err)
}

func TestUppercase(t *testing.T) {
	got, err := uppercase([]value.Value{value.String("shout")})
	require.NoError(t, err)
	assert.Equal(t, "SHOUT", got)

	_, err = uppercase(nil)
	require.Error(t, err)

	_, err = uppercase([]value.Value{value.Bool(true)})
	require.Error(t, err)
}

func TestJoin(t *testing.T) {
	got, err := join([]value.Value{
		value.List{value.Int32(1), value.String("b"), value.Bool(true)},
		value.String(","),
	})
	require.NoError(t, err)
	assert.Equal(t, "1,b,true", got)

	_, err = join([]value.Value{value.String("not-a-list"), value.String(",")})
	require.Error(t, err)
}

func TestFibonacci(t *testing.T) {
	tests := map[string]struct {
		n    value.Int32
		want string
	}{
		"zero":   {n: 0, want: "0"},
		"one":    {n: 1, want: "1"},
		"twelve": {n: 12, want: "144"},
		"large":  {n: 90, want: "2880067194370816120"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := fibonacci(context.Background(), []value.Value{tc.n})
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := fibonacci(context.Background(), []value.Value{value.Int32(-1)})
	require.Error(t, err)
}

func TestSleep(t *testing.T) {
	got, err := sleep(context.Background(), []value.Value{value.Int64(1)})
	require.NoError(t, err)
	assert.Equal(t, "1", got)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = sleep(ctx, []value.Value{value.Int64(10000)})
	require.Error(t, err)
}
