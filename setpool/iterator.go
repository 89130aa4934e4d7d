// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package setpool

import (
	"github.com/lattice-dd/ddkit/internal/engine"
	"github.com/lattice-dd/ddkit/zdd"
)

// Iterator walks a Set's members in ordering order, translating each
// variable index back to its element via the owning Pool (spec §4.7:
// "the single-path element iterator... translating each back to its
// element"). It captures the Set's handle identity at construction;
// any Add/Remove/AddAll/RemoveAll/RetainAll on the same Set afterwards
// invalidates it, per spec §4.7's concurrent-modification contract.
type Iterator[T comparable] struct {
	set      *Set[T]
	snapshot zdd.ZDD
	inner    *zdd.ElementIterator
}

// Iterator returns an Iterator over s's current members.
func (s *Set[T]) Iterator() (*Iterator[T], error) {
	inner, err := s.pool.zf.Elements(s.h)
	if err != nil {
		return nil, err
	}
	return &Iterator[T]{set: s, snapshot: s.h, inner: inner}, nil
}

// Next returns the next element and true, or the zero value and false
// once exhausted. It returns a KindConcurrentModification error,
// instead, if s was mutated since the Iterator was constructed.
func (it *Iterator[T]) Next() (T, bool, error) {
	var zero T
	if !it.set.h.Equal(it.snapshot) {
		return zero, false, engine.NewConcurrentModification(
			"setpool: set mutated during iteration")
	}
	v, ok := it.inner.Next()
	if !ok {
		return zero, false, nil
	}
	return it.set.pool.elementFor(v), true, nil
}
