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

package road

import (
	"encoding/binary"
	"io"
	"log"
	"math"
	"os"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/cybrota/lanedodge/avl"
	"github.com/patrickmn/go-cache"
	"github.com/willf/bloom"
)

const (
	defaultBloomSize   = 4096
	defaultBloomHashes = 4
)

// Stats is a snapshot of the index counters.
type Stats struct {
	Len        int
	Height     int
	Inserted   int
	Refused    int
	Removed    int
	FastMisses int // lookups answered by the Bloom filter alone
}

// Index is the obstacle index keyed by spawn coordinate. Duplicate
// coordinates are refused. An Index is safe for concurrent use: lookups
// and traversals share a read lock, mutations take the write lock.
type Index struct {
	mu   sync.RWMutex
	tree *avl.Tree[Point, Obstacle]

	// Every coordinate ever inserted since the last Clear. A negative
	// answer means the point is certainly absent.
	seen        *bloom.BloomFilter
	bloomSize   uint
	bloomHashes uint

	// Traversal snapshots keyed by order name, flushed on every mutation.
	traversals *cache.Cache

	logger         *log.Logger
	warnDuplicates bool

	inserted, refused, removed int
	fastMisses                 atomic.Int64 // bumped under the read lock
}

// IndexOption configures an Index.
type IndexOption func(*Index)

// WithLogger sets the logger used for duplicate warnings.
func WithLogger(l *log.Logger) IndexOption {
	return func(idx *Index) {
		idx.logger = l
	}
}

// WithBloom sizes the Bloom filter: m bits and k hash functions.
func WithBloom(m, k uint) IndexOption {
	return func(idx *Index) {
		idx.bloomSize = m
		idx.bloomHashes = k
	}
}

// WithDuplicateWarnings turns the duplicate-coordinate warning on or off.
func WithDuplicateWarnings(on bool) IndexOption {
	return func(idx *Index) {
		idx.warnDuplicates = on
	}
}

// NewIndex creates an empty obstacle index.
func NewIndex(opts ...IndexOption) *Index {
	idx := &Index{
		tree:           avl.NewFunc[Point, Obstacle](ComparePoints, avl.WithPolicy(avl.RejectDuplicates)),
		bloomSize:      defaultBloomSize,
		bloomHashes:    defaultBloomHashes,
		traversals:     cache.New(cache.NoExpiration, 0),
		logger:         log.New(os.Stderr, "lanedodge: ", 0),
		warnDuplicates: true,
	}
	for _, opt := range opts {
		opt(idx)
	}
	idx.seen = bloom.New(idx.bloomSize, idx.bloomHashes)
	return idx
}

func pointKey(p Point) []byte {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(int64(p.X)))
	binary.LittleEndian.PutUint64(buf[8:], uint64(int64(p.Y)))
	return buf[:]
}

// Insert adds o at o.Position. An obstacle already stored at the same
// coordinate is kept and the insert is refused: Insert logs a warning and
// returns false.
func (idx *Index) Insert(o Obstacle) bool {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if !idx.tree.Insert(o.Position, o) {
		idx.refused++
		if idx.warnDuplicates {
			idx.logger.Printf("warning: coordinates %s already exist, obstacle %q not inserted", o.Position, o.ID)
		}
		return false
	}

	idx.seen.Add(pointKey(o.Position))
	idx.inserted++
	idx.traversals.Flush()
	return true
}

// Remove deletes the obstacle at p and reports whether one was stored.
func (idx *Index) Remove(p Point) bool {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if !idx.seen.Test(pointKey(p)) {
		idx.fastMisses.Add(1)
		return false
	}
	if !idx.tree.Delete(p) {
		return false
	}
	idx.removed++
	idx.traversals.Flush()
	return true
}

// Lookup returns the obstacle stored at p.
func (idx *Index) Lookup(p Point) (Obstacle, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if !idx.seen.Test(pointKey(p)) {
		idx.fastMisses.Add(1)
		return Obstacle{}, false
	}
	return idx.tree.Search(p)
}

// Contains reports whether an obstacle is stored at p.
func (idx *Index) Contains(p Point) bool {
	_, ok := idx.Lookup(p)
	return ok
}

// InColumn returns, in index order, every obstacle whose X lies in
// [x0, x1].
func (idx *Index) InColumn(x0, x1 int) []Obstacle {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	var result []Obstacle
	low := Point{X: x0, Y: math.MinInt}
	high := Point{X: x1, Y: math.MaxInt}
	idx.tree.Range(low, high, func(_ Point, o Obstacle) bool {
		result = append(result, o)
		return true
	})
	return result
}

// Traversal returns the obstacles in the given order. Results are cached
// per order until the next mutation; the returned slice is the caller's
// to keep.
func (idx *Index) Traversal(order avl.Order) []Obstacle {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if cached, found := idx.traversals.Get(order.String()); found {
		return slices.Clone(cached.([]Obstacle))
	}

	entries := idx.tree.Traverse(order)
	obstacles := make([]Obstacle, len(entries))
	for i, e := range entries {
		obstacles[i] = e.Value
	}
	idx.traversals.Set(order.String(), obstacles, cache.NoExpiration)
	return slices.Clone(obstacles)
}

// Len returns the number of stored obstacles.
func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.tree.Len()
}

// Height returns the height of the underlying tree.
func (idx *Index) Height() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.tree.Height()
}

// IsEmpty reports whether the index holds no obstacles.
func (idx *Index) IsEmpty() bool {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.tree.IsEmpty()
}

// Clear drops every obstacle and resets the Bloom filter. Counters are
// kept.
func (idx *Index) Clear() {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.tree.Clear()
	idx.seen.ClearAll()
	idx.traversals.Flush()
}

// Check verifies the tree invariants.
func (idx *Index) Check() error {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.tree.Check()
}

// Fprint writes the tree structure to w, one obstacle per line.
func (idx *Index) Fprint(w io.Writer) error {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.tree.Fprint(w, func(_ Point, o Obstacle) string {
		return o.String()
	})
}

// Stats returns a snapshot of the index counters.
func (idx *Index) Stats() Stats {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return Stats{
		Len:        idx.tree.Len(),
		Height:     idx.tree.Height(),
		Inserted:   idx.inserted,
		Refused:    idx.refused,
		Removed:    idx.removed,
		FastMisses: int(idx.fastMisses.Load()),
	}
}
