// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"github.com/lattice-dd/ddkit/internal/engine"
)

// BDD is an immutable handle onto one node of a Factory's universe
// graph. The zero value is not a valid BDD; always obtain one from a
// Factory method.
type BDD struct {
	h engine.Handle
}

// Factory owns the universe graph for one fixed variable ordering. All
// BDD values returned by its methods are only meaningful against this
// same Factory: combining BDDs from different Factory instances raises
// a KindInvalidArgument error (see checkOwn).
type Factory struct {
	e    *engine.Factory
	vars [][2]BDD // per-variable [lo_var, hi_var] single-variable BDDs, pinned
}

// New returns a Factory for varnum Boolean variables, numbered
// [0, varnum), ordered as given by ordering (a permutation of
// {0, ..., varnum-1}; its top position is ordering[0]). Options
// configure the initial node table and operation cache sizes; see
// engine.WithNodesize and engine.WithCacheSize.
func New(ordering []int, opts ...engine.Option) (*Factory, error) {
	e, err := engine.New(ordering, reduceBDD, opts...)
	if err != nil {
		return nil, err
	}
	f := &Factory{e: e}
	f.vars = make([][2]BDD, e.N())
	for v := 0; v < e.N(); v++ {
		hi, err := e.MakeNode(int32(v), e.Zero(), e.One())
		if err != nil {
			return nil, err
		}
		lo, err := e.MakeNode(int32(v), e.One(), e.Zero())
		if err != nil {
			return nil, err
		}
		f.vars[v] = [2]BDD{{e.Mint(lo)}, {e.Mint(hi)}}
	}
	return f, nil
}

// reduceBDD is the ROBDD reduction rule of spec §3/§4.4: an inner node
// whose two children are identical is redundant and is replaced by
// that child.
func reduceBDD(lo, hi engine.Ref) bool { return lo == hi }

// Varnum returns the number of Boolean variables this Factory was
// built with.
func (f *Factory) Varnum() int { return f.e.N() }

// False returns the constant-false BDD (LO).
func (f *Factory) False() BDD { return BDD{f.e.Mint(f.e.Zero())} }

// True returns the constant-true BDD (HI).
func (f *Factory) True() BDD { return BDD{f.e.Mint(f.e.One())} }

// From returns False or True according to v.
func (f *Factory) From(v bool) BDD {
	if v {
		return f.True()
	}
	return f.False()
}

// Ithvar returns the BDD representing variable i in its positive form.
func (f *Factory) Ithvar(i int) (BDD, error) {
	if err := f.e.CheckVar(i); err != nil {
		return BDD{}, err
	}
	return f.vars[i][1], nil
}

// NIthvar returns the BDD representing the negation of variable i.
func (f *Factory) NIthvar(i int) (BDD, error) {
	if err := f.e.CheckVar(i); err != nil {
		return BDD{}, err
	}
	return f.vars[i][0], nil
}

// Assignment returns the conjunction of per-variable literals described
// by bits: bits[i] chooses the positive literal for variable i when
// true, the negative literal when false. len(bits) must equal Varnum.
func (f *Factory) Assignment(bits []bool) (BDD, error) {
	if len(bits) != f.Varnum() {
		return BDD{}, engine.NewInvalidArgument("assignment length %d, expected %d", len(bits), f.Varnum())
	}
	res := f.True()
	for i, b := range bits {
		var lit BDD
		if b {
			lit = f.vars[i][1]
		} else {
			lit = f.vars[i][0]
		}
		var err error
		res, err = f.And(res, lit)
		if err != nil {
			return BDD{}, err
		}
	}
	return res, nil
}

func (f *Factory) checkOwn(handles ...BDD) error {
	for _, h := range handles {
		if h.h.Factory() != f.e {
			return engine.NewInvalidArgument("cross-factory operation attempted")
		}
	}
	return nil
}

// Equal implements spec §3's "extensional equality ≡ reference
// equality": x and y denote the same function iff their head-node
// references are identical.
func (x BDD) Equal(y BDD) bool { return x.h.Equal(y.h) }

// Hash is stable and consistent with Equal.
func (x BDD) Hash() uint64 { return x.h.Hash() }

// String gives a structural "var(lo,hi)" rendering with LO/HI at the
// leaves.
func (x BDD) String() string { return x.h.String() }

// Ref exposes the underlying engine handle; used internally by ops.go,
// iterator.go, dot.go, and by the convert package, which needs to walk
// a BDD's structure without a dependency cycle back into this package's
// unexported fields.
func (x BDD) Ref() engine.Ref { return x.h.Ref() }

// Factory returns x's owning engine.Factory (for cross-package use by
// convert, which operates below the bdd.Factory wrapper).
func (x BDD) Factory() *engine.Factory { return x.h.Factory() }

// FromRef wraps a raw engine Ref minted against e as a BDD; callers
// outside this module's own packages have no way to produce a
// meaningful Ref in the first place.
func FromRef(e *engine.Factory, r engine.Ref) BDD { return BDD{e.Mint(r)} }

// Engine exposes f's underlying engine.Factory.
func (f *Factory) Engine() *engine.Factory { return f.e }
