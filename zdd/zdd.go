// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zdd

import "github.com/lattice-dd/ddkit/internal/engine"

// ZDD is an immutable handle onto one node of a Factory's universe
// graph, denoting a family of subsets of {0, ..., N-1}. The zero value
// is not a valid ZDD; always obtain one from a Factory method.
type ZDD struct {
	h engine.Handle
}

// Factory owns the universe graph for one fixed universe size and
// variable ordering. All ZDD values returned by its methods are only
// meaningful against this same Factory; combining handles from
// different Factory instances raises a KindInvalidArgument error.
type Factory struct {
	e *engine.Factory
}

// New returns a Factory over a universe of size varnum, elements
// numbered [0, varnum), with variables visited in the order given by
// ordering (a permutation of {0, ..., varnum-1}). Options configure the
// initial node table and operation cache sizes; see engine.WithNodesize
// and engine.WithCacheSize.
func New(ordering []int, opts ...engine.Option) (*Factory, error) {
	e, err := engine.New(ordering, reduceZDD, opts...)
	if err != nil {
		return nil, err
	}
	return &Factory{e: e}, nil
}

// reduceZDD is the zero-suppression rule of spec §4.5: an inner node
// whose hi-child is the empty family (LO) is redundant, since its
// variable never appears in any member set and is elided entirely.
func reduceZDD(_, hi engine.Ref) bool { return hi == engine.ZeroRef }

// Varnum returns the size of the universe this Factory was built with.
func (f *Factory) Varnum() int { return f.e.N() }

// Empty returns the ZDD denoting the empty family ∅ (LO).
func (f *Factory) Empty() ZDD { return ZDD{f.e.Mint(f.e.Zero())} }

// Unit returns the ZDD denoting the family containing only the empty
// set, {∅} (HI).
func (f *Factory) Unit() ZDD { return ZDD{f.e.Mint(f.e.One())} }

// Element returns the ZDD denoting the singleton family {{v}}
// (spec §4.5's "single-element constructor").
func (f *Factory) Element(v int) (ZDD, error) {
	if err := f.e.CheckVar(v); err != nil {
		return ZDD{}, err
	}
	r, err := f.e.MakeNode(int32(v), f.e.Zero(), f.e.One())
	if err != nil {
		return ZDD{}, err
	}
	return ZDD{f.e.Mint(r)}, nil
}

func (f *Factory) checkOwn(handles ...ZDD) error {
	for _, h := range handles {
		if h.h.Factory() != f.e {
			return engine.NewInvalidArgument("cross-factory operation attempted")
		}
	}
	return nil
}

// Equal implements spec §3's "extensional equality ≡ reference
// equality": x and y denote the same family iff their head-node
// references are identical.
func (x ZDD) Equal(y ZDD) bool { return x.h.Equal(y.h) }

// Hash is stable and consistent with Equal.
func (x ZDD) Hash() uint64 { return x.h.Hash() }

// String gives a structural "var(lo,hi)" rendering with LO/HI at the
// leaves.
func (x ZDD) String() string { return x.h.String() }

// Ref exposes the underlying engine handle; used internally by ops.go,
// family.go, iterator.go, dot.go and by the convert package.
func (x ZDD) Ref() engine.Ref { return x.h.Ref() }

// Factory returns x's owning engine.Factory, for cross-package use by
// convert.
func (x ZDD) Factory() *engine.Factory { return x.h.Factory() }

// FromRef wraps a raw engine Ref minted against e as a ZDD.
func FromRef(e *engine.Factory, r engine.Ref) ZDD { return ZDD{e.Mint(r)} }

// Engine exposes f's underlying engine.Factory.
func (f *Factory) Engine() *engine.Factory { return f.e }
