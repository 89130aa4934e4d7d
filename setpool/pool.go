// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package setpool

import (
	"sync"

	"github.com/lattice-dd/ddkit/internal/engine"
	"github.com/lattice-dd/ddkit/zdd"
)

// Pool owns the shared ZDD factory backing every Set it mints, plus
// the element ↔ variable-index mapping spec §4.7 describes. Capacity
// (the universe size D) is fixed at construction; allocating past it
// is a KindInvalidArgument error.
type Pool[T comparable] struct {
	zf *zdd.Factory

	mu        sync.Mutex
	elemToVar map[T]int
	varToElem []T
	nextVar   int
}

// NewPool returns a Pool with domain capacity domainSize and every
// element allocated lazily, on first reference (spec §4.7). Options
// configure the underlying factory's node table and operation cache;
// see engine.WithNodesize and engine.WithCacheSize.
func NewPool[T comparable](domainSize int, opts ...engine.Option) (*Pool[T], error) {
	if domainSize < 1 {
		return nil, engine.NewInvalidArgument("setpool: domain size must be at least 1, got %d", domainSize)
	}
	ordering := make([]int, domainSize)
	for i := range ordering {
		ordering[i] = i
	}
	zf, err := zdd.New(ordering, opts...)
	if err != nil {
		return nil, err
	}
	return &Pool[T]{
		zf:        zf,
		elemToVar: make(map[T]int, domainSize),
		varToElem: make([]T, domainSize),
	}, nil
}

// NewPoolFrom returns a Pool whose elements are allocated eagerly, in
// the order given: elements[0] gets variable 0 (nearest the factory's
// root), and so on. Supplying elements in increasing expected
// reference frequency, as spec §4.7 suggests, puts the least active
// variables nearest the root and the most active ones nearest the
// terminals.
func NewPoolFrom[T comparable](elements []T, opts ...engine.Option) (*Pool[T], error) {
	p, err := NewPool[T](len(elements), opts...)
	if err != nil {
		return nil, err
	}
	for i, e := range elements {
		p.elemToVar[e] = i
		p.varToElem[i] = e
	}
	p.nextVar = len(elements)
	return p, nil
}

// varFor returns e's variable index, allocating the next free one if e
// has not been referenced before.
func (p *Pool[T]) varFor(e T) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if v, ok := p.elemToVar[e]; ok {
		return v, nil
	}
	if p.nextVar >= len(p.varToElem) {
		return 0, engine.NewInvalidArgument("setpool: domain capacity %d exhausted", len(p.varToElem))
	}
	v := p.nextVar
	p.nextVar++
	p.elemToVar[e] = v
	p.varToElem[v] = e
	return v, nil
}

func (p *Pool[T]) elementFor(v int) T {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.varToElem[v]
}

// NewSet returns a new, empty Set backed by this Pool. The empty set is
// the family {∅} (HI): a single path with no variables on it.
func (p *Pool[T]) NewSet() Set[T] {
	return Set[T]{pool: p, h: p.zf.Unit()}
}

// Domain returns the pool's fixed capacity.
func (p *Pool[T]) Domain() int { return p.zf.Varnum() }
