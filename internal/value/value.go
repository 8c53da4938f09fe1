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

// Package value defines the decoded argument values handlers operate on.
package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is one decoded task argument. The set of implementations is
// closed; handlers dispatch on the concrete type. Integer values keep
// the width declared on the wire.
type Value interface {
	fmt.Stringer

	isValue()
}

type Int32 int32

type Int64 int64

type Uint32 uint32

type Uint64 uint64

type Float32 float32

type Float64 float64

type Bool bool

type String string

type Bytes []byte

// List is an ordered sequence of values.
type List []Value

// Map is a string-keyed mapping. Entries keep their wire order but the
// order carries no meaning.
type Map []MapEntry

type MapEntry struct {
	Key   string
	Value Value
}

func (Int32) isValue()   {}
func (Int64) isValue()   {}
func (Uint32) isValue()  {}
func (Uint64) isValue()  {}
func (Float32) isValue() {}
func (Float64) isValue() {}
func (Bool) isValue()    {}
func (String) isValue()  {}
func (Bytes) isValue()   {}
func (List) isValue()    {}
func (Map) isValue()     {}

func (v Int32) String() string   { return strconv.FormatInt(int64(v), 10) }
func (v Int64) String() string   { return strconv.FormatInt(int64(v), 10) }
func (v Uint32) String() string  { return strconv.FormatUint(uint64(v), 10) }
func (v Uint64) String() string  { return strconv.FormatUint(uint64(v), 10) }
func (v Float32) String() string { return strconv.FormatFloat(float64(v), 'g', -1, 32) }
func (v Float64) String() string { return strconv.FormatFloat(float64(v), 'g', -1, 64) }
func (v Bool) String() string    { return strconv.FormatBool(bool(v)) }
func (v String) String() string  { return string(v) }
func (v Bytes) String() string   { return fmt.Sprintf("%x", []byte(v)) }

func (v List) String() string {
	parts := make([]string, len(v))
	for i, e := range v {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (v Map) String() string {
	parts := make([]string, len(v))
	for i, e := range v {
		parts[i] = e.Key + ": " + e.Value.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Get returns the value stored under key, if any.
func (v Map) Get(key string) (Value, bool) {
	for _, e := range v {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}
