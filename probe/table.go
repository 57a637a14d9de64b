// Copyright 2025 Naren Yellavula
//
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

// Package probe implements a fixed-capacity hash table with linear probing
// for collision resolution. Entries cannot be removed; Set either inserts a
// new key or overwrites an existing one.
package probe

import (
	"errors"
	"fmt"

	"github.com/willf/bloom"
)

var (
	// ErrNotFound is returned by Get for a key that was never set.
	ErrNotFound = errors.New("key not found")
	// ErrTableFull is returned by Set when a new key does not fit.
	ErrTableFull = errors.New("table is full")
)

const (
	bloomBitsPerSlot = 10
	bloomHashes      = 4
)

// Stats summarises how much probing the table has done. Lookups the bloom
// filter rejects never probe, so misses of never-set keys add nothing.
type Stats struct {
	Conflicts  int // probe calls whose first slot held another key
	ProbeTotal int // steps taken past the home slot, over all calls
	ProbeMax   int // longest single chain walked
}

type slot[V any] struct {
	key   string
	value V
	used  bool
}

type config struct {
	tableSize int
	hash      func(key string, size int) int
}

// Option configures a Table.
type Option func(*config)

// WithTableSize overrides the default size of twice the expected items.
func WithTableSize(size int) Option {
	return func(c *config) {
		c.tableSize = size
	}
}

// WithBadHash switches the table to BadHash.
func WithBadHash() Option {
	return func(c *config) {
		c.hash = BadHash
	}
}

// Table maps string keys to values of type V.
// It is not safe for concurrent use.
type Table[V any] struct {
	slots  []slot[V]
	count  int
	hash   func(key string, size int) int
	filter *bloom.BloomFilter
	stats  Stats
}

// New returns a table sized for maxItems entries.
func New[V any](maxItems int, opts ...Option) *Table[V] {
	cfg := config{tableSize: maxItems * 2, hash: GoodHash}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.tableSize < 1 {
		cfg.tableSize = 1
	}

	return &Table[V]{
		slots:  make([]slot[V], cfg.tableSize),
		hash:   cfg.hash,
		filter: bloom.New(uint(cfg.tableSize*bloomBitsPerSlot), bloomHashes),
	}
}

// Len returns the number of keys stored.
func (t *Table[V]) Len() int { return t.count }

// Cap returns the number of slots.
func (t *Table[V]) Cap() int { return len(t.slots) }

// IsEmpty reports whether no key has been set.
func (t *Table[V]) IsEmpty() bool { return t.count == 0 }

// IsFull reports whether every slot holds a key.
func (t *Table[V]) IsFull() bool { return t.count == len(t.slots) }

// Statistics returns the probing statistics gathered so far.
func (t *Table[V]) Statistics() Stats { return t.stats }

// linearProbe finds the slot holding key, or the first free slot for it
// when inserting.
func (t *Table[V]) linearProbe(key string, insert bool) (int, error) {
	position := t.hash(key, len(t.slots)) % len(t.slots)
	steps := 0

	for range t.slots {
		s := &t.slots[position]
		if !s.used {
			if insert {
				return position, nil
			}
			return 0, fmt.Errorf("get %q: %w", key, ErrNotFound)
		}
		if s.key == key {
			return position, nil
		}

		if steps == 0 {
			t.stats.Conflicts++
		}
		position = (position + 1) % len(t.slots)
		steps++
		t.stats.ProbeTotal++
		if steps > t.stats.ProbeMax {
			t.stats.ProbeMax = steps
		}
	}

	if insert {
		return 0, fmt.Errorf("set %q: %w", key, ErrTableFull)
	}
	return 0, fmt.Errorf("get %q: %w", key, ErrNotFound)
}

// Get returns the value stored under key or ErrNotFound.
func (t *Table[V]) Get(key string) (V, error) {
	var zero V
	if !t.filter.Test([]byte(key)) {
		return zero, fmt.Errorf("get %q: %w", key, ErrNotFound)
	}
	position, err := t.linearProbe(key, false)
	if err != nil {
		return zero, err
	}
	return t.slots[position].value, nil
}

// Contains reports whether key has been set.
func (t *Table[V]) Contains(key string) bool {
	_, err := t.Get(key)
	return err == nil
}

// Set stores value under key, overwriting any previous value.
func (t *Table[V]) Set(key string, value V) error {
	position, err := t.linearProbe(key, true)
	if err != nil {
		return err
	}

	s := &t.slots[position]
	if !s.used {
		s.used = true
		s.key = key
		t.count++
		t.filter.Add([]byte(key))
	}
	s.value = value
	return nil
}

// Keys returns the stored keys in slot order.
func (t *Table[V]) Keys() []string {
	keys := make([]string, 0, t.count)
	for _, s := range t.slots {
		if s.used {
			keys = append(keys, s.key)
		}
	}
	return keys
}
