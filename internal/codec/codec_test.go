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

package codec

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	taskv1 "github.com/projecttaskd/taskd/apis/task/v1"
	"github.com/projecttaskd/taskd/internal/value"
)

func mustAny(t *testing.T, m proto.Message) *anypb.Any {
	t.Helper()
	a, err := anypb.New(m)
	require.NoError(t, err)
	return a
}

func TestDecodeScalars(t *testing.T) {
	tests := map[string]struct {
		arg  proto.Message
		want value.Value
	}{
		"int32":          {arg: wrapperspb.Int32(-5), want: value.Int32(-5)},
		"int64":          {arg: wrapperspb.Int64(1 << 40), want: value.Int64(1 << 40)},
		"uint32":         {arg: wrapperspb.UInt32(7), want: value.Uint32(7)},
		"uint64":         {arg: wrapperspb.UInt64(1 << 63), want: value.Uint64(1 << 63)},
		"float":          {arg: wrapperspb.Float(0.5), want: value.Float32(0.5)},
		"double":         {arg: wrapperspb.Double(-2.25), want: value.Float64(-2.25)},
		"bool":           {arg: wrapperspb.Bool(true), want: value.Bool(true)},
		"string":         {arg: wrapperspb.String("hello"), want: value.String("hello")},
		"empty string":   {arg: wrapperspb.String(""), want: value.String("")},
		"bytes":          {arg: wrapperspb.Bytes([]byte{0xde, 0xad}), want: value.Bytes{0xde, 0xad}},
		"zero int32":     {arg: wrapperspb.Int32(0), want: value.Int32(0)},
		"narrowed int64": {arg: wrapperspb.Int64(5), want: value.Int64(5)},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Decode(mustAny(t, tc.arg))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDecodeNested(t *testing.T) {
	list := mustAny(t, &taskv1.ListValue{
		Values: []*anypb.Any{
			mustAny(t, wrapperspb.Int32(1)),
			mustAny(t, wrapperspb.String("two")),
			mustAny(t, &taskv1.ListValue{
				Values: []*anypb.Any{mustAny(t, wrapperspb.Bool(false))},
			}),
		},
	})

	got, err := Decode(list)
	require.NoError(t, err)
	want := value.List{
		value.Int32(1),
		value.String("two"),
		value.List{value.Bool(false)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatal(diff)
	}

	m := mustAny(t, &taskv1.MapValue{
		Entries: []*taskv1.MapValue_Entry{
			{Key: "b", Value: mustAny(t, wrapperspb.Int64(2))},
			{Key: "a", Value: list},
		},
	})

	got, err = Decode(m)
	require.NoError(t, err)
	wantMap := value.Map{
		{Key: "b", Value: value.Int64(2)},
		{Key: "a", Value: want},
	}
	if diff := cmp.Diff(wantMap, got); diff != "" {
		t.Fatal(diff)
	}
}

func TestDecodeUnsupportedType(t *testing.T) {
	tests := map[string]*anypb.Any{
		"top level": {TypeUrl: "type.googleapis.com/google.protobuf.Duration"},
		"nested": mustAny(t, &taskv1.ListValue{
			Values: []*anypb.Any{{TypeUrl: "type.googleapis.com/google.protobuf.Duration"}},
		}),
	}

	for name, arg := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(arg)
			var derr *DecodeError
			require.True(t, errors.As(err, &derr))
			assert.Equal(t, UnsupportedType, derr.Kind)
			assert.Equal(t, "unsupported type type.googleapis.com/google.protobuf.Duration", derr.Error())
		})
	}
}

func TestDecodeMalformedPayload(t *testing.T) {
	arg := &anypb.Any{
		TypeUrl: "type.googleapis.com/google.protobuf.Int64Value",
		Value:   []byte{0xff},
	}

	_, err := Decode(arg)
	var derr *DecodeError
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, MalformedPayload, derr.Kind)
}

func TestDecodeDepthBound(t *testing.T) {
	nested := mustAny(t, wrapperspb.Int32(1))
	for i := 0; i < maxDepth+4; i++ {
		nested = mustAny(t, &taskv1.ListValue{Values: []*anypb.Any{nested}})
	}

	_, err := Decode(nested)
	var derr *DecodeError
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, DepthExceeded, derr.Kind)
}

func TestDecodeAllAbortsOnFirstFailure(t *testing.T) {
	args := []*anypb.Any{
		mustAny(t, wrapperspb.Int32(1)),
		{TypeUrl: "example.com/not.a.Thing"},
		mustAny(t, wrapperspb.Int32(3)),
	}

	_, err := DecodeAll(args)
	require.Error(t, err)
	assert.Equal(t, "unsupported type example.com/not.a.Thing", err.Error())
}

func TestDecodeAllEmpty(t *testing.T) {
	got, err := DecodeAll(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

// Decoding must invert encoding on the supported value set.
func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := map[string]value.Value{
		"int32":   value.Int32(-40),
		"int64":   value.Int64(1 << 50),
		"uint32":  value.Uint32(12),
		"uint64":  value.Uint64(1<<64 - 1),
		"float32": value.Float32(1.5),
		"float64": value.Float64(-0.125),
		"bool":    value.Bool(true),
		"string":  value.String("round trip"),
		"bytes":   value.Bytes("opaque"),
		"list":    value.List{value.Int32(1), value.List{value.String("x")}},
		"map": value.Map{
			{Key: "n", Value: value.Uint64(9)},
			{Key: "inner", Value: value.Map{{Key: "b", Value: value.Bool(false)}}},
		},
		"empty list": value.List{},
		"empty map":  value.Map{},
	}

	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			a, err := Encode(want)
			require.NoError(t, err)
			got, err := Decode(a)
			require.NoError(t, err)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}
