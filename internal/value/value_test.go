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

package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	tests := map[string]struct {
		val  Value
		want string
	}{
		"int32":    {Int32(-5), "-5"},
		"int64":    {Int64(42), "42"},
		"uint32":   {Uint32(7), "7"},
		"uint64":   {Uint64(8), "8"},
		"float32":  {Float32(0.5), "0.5"},
		"float64":  {Float64(-2.25), "-2.25"},
		"bool":     {Bool(true), "true"},
		"string":   {String("hi"), "hi"},
		"bytes":    {Bytes{0xde, 0xad}, "dead"},
		"list":     {List{Int32(1), String("x")}, "[1, x]"},
		"empty":    {List{}, "[]"},
		"map":      {Map{{Key: "a", Value: Int32(1)}, {Key: "b", Value: Bool(false)}}, "{a: 1, b: false}"},
		"nested":   {List{Map{{Key: "k", Value: List{Int64(2)}}}}, "[{k: [2]}]"},
		"mapempty": {Map{}, "{}"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.val.String())
		})
	}
}

func TestMapGet(t *testing.T) {
	m := Map{
		{Key: "a", Value: Int32(1)},
		{Key: "b", Value: Int32(2)},
	}

	v, ok := m.Get("b")
	assert.True(t, ok)
	assert.Equal(t, Int32(2), v)

	_, ok = m.Get("c")
	assert.False(t, ok)
}
