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

package workgroup

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWithNoRegisteredFunctions(t *testing.T) {
	var g Group
	require.NoError(t, g.Run(context.Background()))
}

func TestRunReturnsFirstMemberError(t *testing.T) {
	var g Group
	errBoom := errors.New("boom")

	release := make(chan struct{})
	g.Add(func(<-chan struct{}) error {
		<-release
		return errBoom
	})
	g.Add(func(stop <-chan struct{}) error {
		<-stop
		return errors.New("stopped")
	})

	result := make(chan error)
	go func() {
		result <- g.Run(context.Background())
	}()
	close(release)
	assert.Equal(t, errBoom, <-result)
}

// The first member to exit stops the rest, and Run waits for all of
// them before returning.
func TestRunStopsRemainingMembersOnFirstExit(t *testing.T) {
	var g Group

	const members = 50
	var stopped int32
	for i := 0; i < members; i++ {
		g.Add(func(stop <-chan struct{}) error {
			<-stop
			atomic.AddInt32(&stopped, 1)
			return nil
		})
	}
	g.Add(func(<-chan struct{}) error { return nil })

	require.NoError(t, g.Run(context.Background()))
	assert.Equal(t, int32(members), atomic.LoadInt32(&stopped))
}

// Canceling the context passed to Run shuts the group down and
// surfaces the cancellation to Run's caller.
func TestRunHonorsContextCancellation(t *testing.T) {
	var g Group

	var stopped int32
	g.Add(func(stop <-chan struct{}) error {
		<-stop
		atomic.AddInt32(&stopped, 1)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	result := make(chan error)
	go func() {
		result <- g.Run(ctx)
	}()

	cancel()
	assert.Equal(t, context.Canceled, <-result)
	assert.Equal(t, int32(1), atomic.LoadInt32(&stopped))
}

// A context member's error propagates to Run's caller like any other
// member's.
func TestAddContextPropagatesMemberError(t *testing.T) {
	var g Group
	errExit := errors.New("member exit")

	g.AddContext(func(context.Context) error {
		return errExit
	})

	assert.Equal(t, errExit, g.Run(context.Background()))
}

// When another member triggers shutdown, a context member sees its
// context canceled and its return value is collected.
func TestAddContextCanceledOnShutdown(t *testing.T) {
	var g Group

	canceled := make(chan struct{})
	g.AddContext(func(ctx context.Context) error {
		<-ctx.Done()
		close(canceled)
		return ctx.Err()
	})
	g.Add(func(<-chan struct{}) error {
		return errors.New("trigger shutdown")
	})

	result := make(chan error)
	go func() {
		result <- g.Run(context.Background())
	}()

	select {
	case <-canceled:
	case <-time.After(5 * time.Second):
		t.Fatal("context member was not canceled on shutdown")
	}
	assert.EqualError(t, <-result, "trigger shutdown")
}
