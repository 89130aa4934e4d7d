// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"github.com/lattice-dd/ddkit/internal/engine"
)

// Operator codes for the operation cache; values are arbitrary but
// stable within one process. They overlap with zdd's own codes (both
// start at 0), which is harmless because the two packages never share
// a Factory or its cache.
//
// Every recursive compute routine below pushes a freshly computed
// child ref onto the factory's refstack (engine.Factory.PushRef) before
// recursing again or calling MakeNode for the parent: that child is a
// brand new node with refcount 0 and no Handle wrapping it yet, so
// without the pin a gc triggered by the next allocation (the sibling
// recursion, or the parent MakeNode itself) would sweep it as garbage.
// Grounded on the teacher's pushref/popref discipline around every
// transient in hoperations.go (e.g. not/apply: "low := b.pushref(...);
// high := b.pushref(...); res := b.makenode(...); b.popref(2)").
const (
	opNot int32 = iota
	opAnd
	opOr
	opXor
)

// Not returns the negation of x.
func (f *Factory) Not(x BDD) (BDD, error) {
	if err := f.checkOwn(x); err != nil {
		return BDD{}, err
	}
	r, err := f.not(x.Ref())
	if err != nil {
		return BDD{}, err
	}
	return BDD{f.e.Mint(r)}, nil
}

func (f *Factory) not(a engine.Ref) (engine.Ref, error) {
	switch a {
	case f.e.Zero():
		return f.e.One(), nil
	case f.e.One():
		return f.e.Zero(), nil
	}
	key := engine.CacheKey{Op: opNot, A: a, B: -1}
	return f.e.Memo(key, func() (engine.Ref, error) {
		lo, err := f.not(f.e.Lo(a))
		if err != nil {
			return engine.NoRef, err
		}
		f.e.PushRef(lo)
		hi, err := f.not(f.e.Hi(a))
		if err != nil {
			f.e.PopRef(1)
			return engine.NoRef, err
		}
		f.e.PushRef(hi)
		r, err := f.e.MakeNode(f.e.Var(a), lo, hi)
		f.e.PopRef(2)
		return r, err
	})
}

// And returns the conjunction of x and y.
func (f *Factory) And(x, y BDD) (BDD, error) { return f.binary(opAnd, x, y) }

// Or returns the disjunction of x and y.
func (f *Factory) Or(x, y BDD) (BDD, error) { return f.binary(opOr, x, y) }

// Xor returns the exclusive-or of x and y.
func (f *Factory) Xor(x, y BDD) (BDD, error) { return f.binary(opXor, x, y) }

func (f *Factory) binary(op int32, x, y BDD) (BDD, error) {
	if err := f.checkOwn(x, y); err != nil {
		return BDD{}, err
	}
	r, err := f.apply(op, x.Ref(), y.Ref())
	if err != nil {
		return BDD{}, err
	}
	return BDD{f.e.Mint(r)}, nil
}

// apply is the single recursive driver behind AND/OR/XOR, per spec
// §4.3/§4.4: terminal and idempotence short-circuits first, then the
// top-variable rule, memoised through the shared operation cache.
func (f *Factory) apply(op int32, a, b engine.Ref) (engine.Ref, error) {
	if r, ok := f.shortcut(op, a, b); ok {
		return r, nil
	}
	key := f.key(op, a, b)
	return f.e.Memo(key, func() (engine.Ref, error) {
		topVar, aLo, aHi, bLo, bHi := f.e.TopSplit(a, b)
		lo, err := f.apply(op, aLo, bLo)
		if err != nil {
			return engine.NoRef, err
		}
		f.e.PushRef(lo)
		hi, err := f.apply(op, aHi, bHi)
		if err != nil {
			f.e.PopRef(1)
			return engine.NoRef, err
		}
		f.e.PushRef(hi)
		r, err := f.e.MakeNode(topVar, lo, hi)
		f.e.PopRef(2)
		return r, err
	})
}

// shortcut implements the terminal/idempotence table of spec §4.4.
// AND, OR and XOR are all commutative, so every rule here is checked
// symmetrically in a or b.
func (f *Factory) shortcut(op int32, a, b engine.Ref) (engine.Ref, bool) {
	zero, one := f.e.Zero(), f.e.One()
	if a == b {
		switch op {
		case opAnd, opOr:
			return a, true
		case opXor:
			return zero, true
		}
	}
	switch op {
	case opAnd:
		if a == zero || b == zero {
			return zero, true
		}
		if a == one {
			return b, true
		}
		if b == one {
			return a, true
		}
	case opOr:
		if a == one || b == one {
			return one, true
		}
		if a == zero {
			return b, true
		}
		if b == zero {
			return a, true
		}
	case opXor:
		if a == zero {
			return b, true
		}
		if b == zero {
			return a, true
		}
		if a == one {
			r, _ := f.not(b)
			return r, true
		}
		if b == one {
			r, _ := f.not(a)
			return r, true
		}
	}
	return engine.NoRef, false
}

// key builds a commutativity-normalised CacheKey: AND, OR and XOR are
// all commutative, so (a,b) and (b,a) must hash and compare equal
// (spec §3).
func (f *Factory) key(op int32, a, b engine.Ref) engine.CacheKey {
	if a > b {
		a, b = b, a
	}
	return engine.CacheKey{Op: op, A: a, B: int64(b)}
}
