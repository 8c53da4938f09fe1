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

// Package codec translates wire Any envelopes to and from decoded
// argument values.
package codec

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	taskv1 "github.com/projecttaskd/taskd/apis/task/v1"
	"github.com/projecttaskd/taskd/internal/value"
)

// maxDepth bounds ListValue/MapValue nesting so hostile input cannot
// drive the decoder into unbounded recursion.
const maxDepth = 64

// ErrorKind classifies a DecodeError.
type ErrorKind int

const (
	// UnsupportedType means the envelope's type URL is not in the
	// recognized set.
	UnsupportedType ErrorKind = iota

	// MalformedPayload means the type URL was recognized but the
	// payload failed to deserialize.
	MalformedPayload

	// DepthExceeded means nesting passed the recursion bound.
	DepthExceeded
)

// DecodeError reports a failure to decode a single argument envelope.
type DecodeError struct {
	TypeURL string
	Kind    ErrorKind
	err     error
}

func (e *DecodeError) Error() string {
	switch e.Kind {
	case UnsupportedType:
		return fmt.Sprintf("unsupported type %s", e.TypeURL)
	case DepthExceeded:
		return fmt.Sprintf("nesting depth exceeds %d at %s", maxDepth, e.TypeURL)
	default:
		return fmt.Sprintf("malformed payload for %s: %s", e.TypeURL, e.err)
	}
}

func (e *DecodeError) Unwrap() error { return e.err }

// DecodeAll decodes an ordered argument sequence. The first failing
// envelope aborts the decode.
func DecodeAll(args []*anypb.Any) ([]value.Value, error) {
	vals := make([]value.Value, 0, len(args))
	for _, a := range args {
		v, err := decode(a, 0)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return vals, nil
}

// Decode decodes a single argument envelope.
func Decode(a *anypb.Any) (value.Value, error) {
	return decode(a, 0)
}

func decode(a *anypb.Any, depth int) (value.Value, error) {
	if depth > maxDepth {
		return nil, &DecodeError{TypeURL: a.GetTypeUrl(), Kind: DepthExceeded}
	}

	unmarshal := func(m proto.Message) error {
		if err := proto.Unmarshal(a.GetValue(), m); err != nil {
			return &DecodeError{TypeURL: a.GetTypeUrl(), Kind: MalformedPayload, err: err}
		}
		return nil
	}

	switch a.MessageName() {
	case "google.protobuf.Int32Value":
		var m wrapperspb.Int32Value
		if err := unmarshal(&m); err != nil {
			return nil, err
		}
		return value.Int32(m.Value), nil
	case "google.protobuf.Int64Value":
		var m wrapperspb.Int64Value
		if err := unmarshal(&m); err != nil {
			return nil, err
		}
		return value.Int64(m.Value), nil
	case "google.protobuf.UInt32Value":
		var m wrapperspb.UInt32Value
		if err := unmarshal(&m); err != nil {
			return nil, err
		}
		return value.Uint32(m.Value), nil
	case "google.protobuf.UInt64Value":
		var m wrapperspb.UInt64Value
		if err := unmarshal(&m); err != nil {
			return nil, err
		}
		return value.Uint64(m.Value), nil
	case "google.protobuf.FloatValue":
		var m wrapperspb.FloatValue
		if err := unmarshal(&m); err != nil {
			return nil, err
		}
		return value.Float32(m.Value), nil
	case "google.protobuf.DoubleValue":
		var m wrapperspb.DoubleValue
		if err := unmarshal(&m); err != nil {
			return nil, err
		}
		return value.Float64(m.Value), nil
	case "google.protobuf.BoolValue":
		var m wrapperspb.BoolValue
		if err := unmarshal(&m); err != nil {
			return nil, err
		}
		return value.Bool(m.Value), nil
	case "google.protobuf.StringValue":
		var m wrapperspb.StringValue
		if err := unmarshal(&m); err != nil {
			return nil, err
		}
		return value.String(m.Value), nil
	case "google.protobuf.BytesValue":
		var m wrapperspb.BytesValue
		if err := unmarshal(&m); err != nil {
			return nil, err
		}
		return value.Bytes(m.Value), nil
	case "task.v1.ListValue":
		var m taskv1.ListValue
		if err := unmarshal(&m); err != nil {
			return nil, err
		}
		list := make(value.List, 0, len(m.Values))
		for _, el := range m.Values {
			v, err := decode(el, depth+1)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		return list, nil
	case "task.v1.MapValue":
		var m taskv1.MapValue
		if err := unmarshal(&m); err != nil {
			return nil, err
		}
		mv := make(value.Map, 0, len(m.Entries))
		for _, e := range m.Entries {
			v, err := decode(e.GetValue(), depth+1)
			if err != nil {
				return nil, err
			}
			mv = append(mv, value.MapEntry{Key: e.GetKey(), Value: v})
		}
		return mv, nil
	default:
		return nil, &DecodeError{TypeURL: a.GetTypeUrl(), Kind: UnsupportedType}
	}
}

// Encode converts a decoded value back to its wire envelope. Decoding an
// encoded value yields the original. The submit path never needs this;
// it exists for diagnostics and for exercising the decoder.
func Encode(v value.Value) (*anypb.Any, error) {
	switch v := v.(type) {
	case value.Int32:
		return anypb.New(wrapperspb.Int32(int32(v)))
	case value.Int64:
		return anypb.New(wrapperspb.Int64(int64(v)))
	case value.Uint32:
		return anypb.New(wrapperspb.UInt32(uint32(v)))
	case value.Uint64:
		return anypb.New(wrapperspb.UInt64(uint64(v)))
	case value.Float32:
		return anypb.New(wrapperspb.Float(float32(v)))
	case value.Float64:
		return anypb.New(wrapperspb.Double(float64(v)))
	case value.Bool:
		return anypb.New(wrapperspb.Bool(bool(v)))
	case value.String:
		return anypb.New(wrapperspb.String(string(v)))
	case value.Bytes:
		return anypb.New(wrapperspb.Bytes([]byte(v)))
	case value.List:
		m := &taskv1.ListValue{Values: make([]*anypb.Any, 0, len(v))}
		for _, el := range v {
			a, err := Encode(el)
			if err != nil {
				return nil, err
			}
			m.Values = append(m.Values, a)
		}
		return anypb.New(m)
	case value.Map:
		m := &taskv1.MapValue{Entries: make([]*taskv1.MapValue_Entry, 0, len(v))}
		for _, e := range v {
			a, err := Encode(e.Value)
			if err != nil {
				return nil, err
			}
			m.Entries = append(m.Entries, &taskv1.MapValue_Entry{Key: e.Key, Value: a})
		}
		return anypb.New(m)
	default:
		return nil, fmt.Errorf("unencodable value %T", v)
	}
}
