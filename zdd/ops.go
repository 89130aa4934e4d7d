// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zdd

import "github.com/lattice-dd/ddkit/internal/engine"

// Operator codes for the operation cache.
//
// As in the bdd package, every recursive compute routine below pushes a
// freshly computed child ref onto the factory's refstack
// (engine.Factory.PushRef) before recursing again or calling MakeNode
// for the parent, to protect it from a gc triggered by that next
// allocation; see bdd/ops.go's comment and the teacher's pushref/popref
// discipline (gc.go, hoperations.go) this mirrors.
const (
	opUnion int32 = iota
	opIntersection
	opDifference
	opSubset0
	opSubset1
	opChange
)

// Union returns the family x ∪ y.
func (f *Factory) Union(x, y ZDD) (ZDD, error) { return f.binary(opUnion, x, y) }

// Intersection returns the family x ∩ y.
func (f *Factory) Intersection(x, y ZDD) (ZDD, error) { return f.binary(opIntersection, x, y) }

// Difference returns the family x ∖ y.
func (f *Factory) Difference(x, y ZDD) (ZDD, error) { return f.binary(opDifference, x, y) }

func (f *Factory) binary(op int32, x, y ZDD) (ZDD, error) {
	if err := f.checkOwn(x, y); err != nil {
		return ZDD{}, err
	}
	r, err := f.apply(op, x.Ref(), y.Ref())
	if err != nil {
		return ZDD{}, err
	}
	return ZDD{f.e.Mint(r)}, nil
}

// apply is the recursive driver behind UNION/INTERSECTION/DIFFERENCE,
// per spec §4.5's operator table. Unlike bdd's binary operators, the
// ZDD top-variable rule is asymmetric in which side's subtree gets
// descended into, so apply implements it directly rather than reusing
// engine.TopSplit's always-symmetric pairing.
func (f *Factory) apply(op int32, a, b engine.Ref) (engine.Ref, error) {
	if r, ok := f.shortcut(op, a, b); ok {
		return r, nil
	}
	key := f.key(op, a, b)
	return f.e.Memo(key, func() (engine.Ref, error) {
		va, vb := f.topOrder(a), f.topOrder(b)
		switch {
		case va == vb:
			lo, err := f.apply(op, f.e.Lo(a), f.e.Lo(b))
			if err != nil {
				return engine.NoRef, err
			}
			f.e.PushRef(lo)
			hi, err := f.apply(op, f.e.Hi(a), f.e.Hi(b))
			if err != nil {
				f.e.PopRef(1)
				return engine.NoRef, err
			}
			f.e.PushRef(hi)
			r, err := f.e.MakeNode(f.e.Var(a), lo, hi)
			f.e.PopRef(2)
			return r, err
		case va < vb:
			return f.applyHigherA(op, a, b)
		default:
			return f.applyHigherB(op, a, b)
		}
	})
}

// applyHigherA handles the case where a's top variable precedes b's
// (a is "higher" in the ordering, spec §4.5's "when a is higher" rows).
func (f *Factory) applyHigherA(op int32, a, b engine.Ref) (engine.Ref, error) {
	switch op {
	case opUnion:
		lo, err := f.apply(op, f.e.Lo(a), b)
		if err != nil {
			return engine.NoRef, err
		}
		f.e.PushRef(lo)
		r, err := f.e.MakeNode(f.e.Var(a), lo, f.e.Hi(a))
		f.e.PopRef(1)
		return r, err
	case opIntersection:
		return f.apply(op, f.e.Lo(a), b)
	case opDifference:
		lo, err := f.apply(op, f.e.Lo(a), b)
		if err != nil {
			return engine.NoRef, err
		}
		f.e.PushRef(lo)
		r, err := f.e.MakeNode(f.e.Var(a), lo, f.e.Hi(a))
		f.e.PopRef(1)
		return r, err
	}
	return engine.NoRef, engine.NewUnknownOperator("unknown zdd operator code %d", op)
}

// applyHigherB handles the case where b's top variable precedes a's.
func (f *Factory) applyHigherB(op int32, a, b engine.Ref) (engine.Ref, error) {
	switch op {
	case opUnion:
		lo, err := f.apply(op, a, f.e.Lo(b))
		if err != nil {
			return engine.NoRef, err
		}
		f.e.PushRef(lo)
		r, err := f.e.MakeNode(f.e.Var(b), lo, f.e.Hi(b))
		f.e.PopRef(1)
		return r, err
	case opIntersection:
		return f.apply(op, a, f.e.Lo(b))
	case opDifference:
		return f.apply(op, a, f.e.Lo(b))
	}
	return engine.NoRef, engine.NewUnknownOperator("unknown zdd operator code %d", op)
}

func (f *Factory) topOrder(r engine.Ref) int32 {
	if f.e.IsTerminal(r) {
		return int32(f.Varnum())
	}
	return f.e.OrderIndex(f.e.Var(r))
}

// shortcut implements the terminal/idempotence table of spec §4.5.
// UNION and INTERSECTION are commutative; DIFFERENCE is not, so its
// rules are checked in argument order.
func (f *Factory) shortcut(op int32, a, b engine.Ref) (engine.Ref, bool) {
	zero := f.e.Zero()
	if a == b {
		switch op {
		case opUnion, opIntersection:
			return a, true
		case opDifference:
			return zero, true
		}
	}
	switch op {
	case opUnion:
		if a == zero {
			return b, true
		}
		if b == zero {
			return a, true
		}
	case opIntersection:
		if a == zero || b == zero {
			return zero, true
		}
	case opDifference:
		if a == zero {
			return zero, true
		}
		if b == zero {
			return a, true
		}
	}
	return engine.NoRef, false
}

// key builds the CacheKey for op, normalising operand order for the
// commutative operators (UNION, INTERSECTION) but preserving it for
// DIFFERENCE.
func (f *Factory) key(op int32, a, b engine.Ref) engine.CacheKey {
	switch op {
	case opUnion, opIntersection:
		if a > b {
			a, b = b, a
		}
	}
	return engine.CacheKey{Op: op, A: a, B: int64(b)}
}

// Subset1 returns the sub-family of x restricted to sets containing v,
// with v removed from each (spec §4.5's SUBSET1).
func (f *Factory) Subset1(x ZDD, v int) (ZDD, error) {
	if err := f.checkOwn(x); err != nil {
		return ZDD{}, err
	}
	if err := f.e.CheckVar(v); err != nil {
		return ZDD{}, err
	}
	r, err := f.subset1(x.Ref(), int32(v))
	if err != nil {
		return ZDD{}, err
	}
	return ZDD{f.e.Mint(r)}, nil
}

func (f *Factory) subset1(a engine.Ref, v int32) (engine.Ref, error) {
	target := f.e.OrderIndex(v)
	if f.topOrder(a) > target {
		return f.e.Zero(), nil
	}
	if f.e.Var(a) == v {
		return f.e.Hi(a), nil
	}
	key := engine.CacheKey{Op: opSubset1, A: a, B: int64(v)}
	return f.e.Memo(key, func() (engine.Ref, error) {
		lo, err := f.subset1(f.e.Lo(a), v)
		if err != nil {
			return engine.NoRef, err
		}
		f.e.PushRef(lo)
		hi, err := f.subset1(f.e.Hi(a), v)
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

// Subset0 returns the sub-family of x restricted to sets not
// containing v (spec §4.5's SUBSET0).
func (f *Factory) Subset0(x ZDD, v int) (ZDD, error) {
	if err := f.checkOwn(x); err != nil {
		return ZDD{}, err
	}
	if err := f.e.CheckVar(v); err != nil {
		return ZDD{}, err
	}
	r, err := f.subset0(x.Ref(), int32(v))
	if err != nil {
		return ZDD{}, err
	}
	return ZDD{f.e.Mint(r)}, nil
}

func (f *Factory) subset0(a engine.Ref, v int32) (engine.Ref, error) {
	target := f.e.OrderIndex(v)
	if f.topOrder(a) > target {
		return a, nil
	}
	if f.e.Var(a) == v {
		return f.e.Lo(a), nil
	}
	key := engine.CacheKey{Op: opSubset0, A: a, B: int64(v)}
	return f.e.Memo(key, func() (engine.Ref, error) {
		lo, err := f.subset0(f.e.Lo(a), v)
		if err != nil {
			return engine.NoRef, err
		}
		f.e.PushRef(lo)
		hi, err := f.subset0(f.e.Hi(a), v)
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

// Change toggles membership of v in every set of x: sets containing v
// lose it, sets lacking it gain it (spec §4.5's CHANGE, aka TOGGLE).
// Double Change is the identity (spec §8 property 5).
func (f *Factory) Change(x ZDD, v int) (ZDD, error) {
	if err := f.checkOwn(x); err != nil {
		return ZDD{}, err
	}
	if err := f.e.CheckVar(v); err != nil {
		return ZDD{}, err
	}
	r, err := f.change(x.Ref(), int32(v))
	if err != nil {
		return ZDD{}, err
	}
	return ZDD{f.e.Mint(r)}, nil
}

func (f *Factory) change(a engine.Ref, v int32) (engine.Ref, error) {
	target := f.e.OrderIndex(v)
	if f.topOrder(a) > target {
		return f.e.MakeNode(v, f.e.Zero(), a)
	}
	if f.e.Var(a) == v {
		return f.e.MakeNode(v, f.e.Hi(a), f.e.Lo(a))
	}
	key := engine.CacheKey{Op: opChange, A: a, B: int64(v)}
	return f.e.Memo(key, func() (engine.Ref, error) {
		lo, err := f.change(f.e.Lo(a), v)
		if err != nil {
			return engine.NoRef, err
		}
		f.e.PushRef(lo)
		hi, err := f.change(f.e.Hi(a), v)
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
