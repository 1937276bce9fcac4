package supertrie

import (
	"io"
	"sync"

	"github.com/bits-and-blooms/bitset"
)

// Synchronized guards an Index with a single mutex so that it can be shared
// between goroutines. Queries take the same exclusive lock as inserts.
type Synchronized struct {
	mu  sync.Mutex
	idx *Index
}

// NewSynchronized wraps idx. The caller must not use idx directly afterwards.
func NewSynchronized(idx *Index) *Synchronized {
	return &Synchronized{idx: idx}
}

// Insert calls Index.Insert under the lock.
func (s *Synchronized) Insert(block, boundary *bitset.BitSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.idx.Insert(block, boundary)
}

// Query calls Index.Query under the lock.
func (s *Synchronized) Query(componentBlock, componentBoundary *bitset.BitSet) ([]*bitset.BitSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.idx.Query(componentBlock, componentBoundary)
}

// QueryWidth calls Index.QueryWidth under the lock.
func (s *Synchronized) QueryWidth(componentBlock, componentBoundary *bitset.BitSet, widthBound int) ([]*bitset.BitSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.idx.QueryWidth(componentBlock, componentBoundary, widthBound)
}

// Size calls Index.Size under the lock.
func (s *Synchronized) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.idx.Size()
}

// Stats calls Index.Stats under the lock.
func (s *Synchronized) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.idx.Stats()
}

// Audit calls Index.Audit under the lock.
func (s *Synchronized) Audit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.idx.Audit()
}

// Dump calls Index.Dump under the lock.
func (s *Synchronized) Dump(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.idx.Dump(w)
}
