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

// Package cache implements the bounded store of recent task results.
package cache

import (
	"hash/fnv"
	"sync"

	"github.com/hashicorp/golang-lru/simplelru"

	taskv1 "github.com/projecttaskd/taskd/apis/task/v1"
)

const (
	// DefaultCapacity is the total number of results held across all
	// shards before eviction begins.
	DefaultCapacity = 4096

	// DefaultShards partitions the key space. Must be a power of two
	// so shard selection collapses to a mask.
	DefaultShards = 16
)

// Result is a completed task outcome. Status is SUCCESS or FAILED;
// PENDING is never stored.
type Result struct {
	Status taskv1.Status
	Value  string
}

// ResultCache maps task ids to results. Entries are evicted least
// recently used, independently per shard. All methods are safe for
// concurrent use.
type ResultCache struct {
	shards []*shard
	mask   uint64
}

type shard struct {
	mu sync.Mutex
	// guarded by mu
	entries *simplelru.LRU
}

// OnEvict is called for every evicted entry with the owning shard still
// locked. It must not call back into the cache.
type OnEvict func(taskID string)

// New returns a ResultCache with the given total capacity split across
// shardCount shards. shardCount must be a power of two and capacity at
// least shardCount.
func New(capacity, shardCount int, onEvict OnEvict) *ResultCache {
	if shardCount <= 0 || shardCount&(shardCount-1) != 0 {
		panic("cache: shard count must be a power of two")
	}
	if capacity < shardCount {
		panic("cache: capacity must be at least the shard count")
	}

	c := &ResultCache{
		shards: make([]*shard, shardCount),
		mask:   uint64(shardCount - 1),
	}
	for i := range c.shards {
		var cb simplelru.EvictCallback
		if onEvict != nil {
			cb = func(key, _ interface{}) {
				onEvict(key.(string))
			}
		}
		entries, err := simplelru.NewLRU(capacity/shardCount, cb)
		if err != nil {
			// Only reachable with a non-positive size, which the
			// guards above exclude.
			panic(err)
		}
		c.shards[i] = &shard{entries: entries}
	}
	return c
}

// Get returns the result recorded for taskID and marks it most recently
// used.
func (c *ResultCache) Get(taskID string) (Result, bool) {
	s := c.shard(taskID)
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.entries.Get(taskID)
	if !ok {
		return Result{}, false
	}
	return v.(Result), true
}

// Put records the result for taskID, overwriting any previous entry and
// evicting the least recently used entry if the shard is full.
func (c *ResultCache) Put(taskID string, r Result) {
	s := c.shard(taskID)
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries.Add(taskID, r)
}

// ContainsAll reports whether every id is present. On failure it names
// the first missing id in the order given. Probing does not refresh
// recency, so dependency checks cannot keep an otherwise cold entry
// alive.
func (c *ResultCache) ContainsAll(ids []string) (string, bool) {
	for _, id := range ids {
		s := c.shard(id)
		s.mu.Lock()
		ok := s.entries.Contains(id)
		s.mu.Unlock()
		if !ok {
			return id, false
		}
	}
	return "", true
}

// Len returns the number of cached results.
func (c *ResultCache) Len() int {
	n := 0
	for _, s := range c.shards {
		s.mu.Lock()
		n += s.entries.Len()
		s.mu.Unlock()
	}
	return n
}

func (c *ResultCache) shard(taskID string) *shard {
	h := fnv.New64a()
	h.Write([]byte(taskID))
	return c.shards[h.Sum64()&c.mask]
}
