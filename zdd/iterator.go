// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zdd

import "github.com/lattice-dd/ddkit/internal/engine"

// Membership is one member-set of a family, as a length-Varnum boolean
// vector: Membership[v] is true iff v belongs to that set. Unlike
// bdd.Assign, there is no don't-care value — zero-suppression means a
// skipped variable is simply absent (spec §4.5's "family iterator").
type Membership []bool

// AllSets calls visit once for every set in x's family, depth-first,
// lo-before-hi. visit must not retain the buffer past the call (it is
// reused across calls); copy it if you need to keep it.
func (f *Factory) AllSets(x ZDD, visit func(Membership) error) error {
	if err := f.checkOwn(x); err != nil {
		return err
	}
	buf := make(Membership, f.Varnum())
	return f.allsets(x.Ref(), buf, visit)
}

func (f *Factory) allsets(r engine.Ref, buf Membership, visit func(Membership) error) error {
	if r == f.e.One() {
		return visit(buf)
	}
	if r == f.e.Zero() {
		return nil
	}
	v := f.e.Var(r)
	buf[v] = false
	if err := f.allsets(f.e.Lo(r), buf, visit); err != nil {
		return err
	}
	buf[v] = true
	if err := f.allsets(f.e.Hi(r), buf, visit); err != nil {
		return err
	}
	buf[v] = false
	return nil
}

// FamilyIterator walks every member-set of a ZDD's family, computed
// eagerly at construction (mirrors bdd.Iterator's rationale: simpler,
// no less correct, for the sizes this domain builds). Not safe for
// concurrent use.
type FamilyIterator struct {
	sets []Membership
	pos  int
}

// Sets returns a FamilyIterator over x's member-sets.
func (f *Factory) Sets(x ZDD) (*FamilyIterator, error) {
	it := &FamilyIterator{}
	err := f.AllSets(x, func(m Membership) error {
		cp := make(Membership, len(m))
		copy(cp, m)
		it.sets = append(it.sets, cp)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return it, nil
}

// Next returns the next member-set and true, or (nil, false) once
// exhausted. Each returned Membership is a fresh copy, safe to retain.
func (it *FamilyIterator) Next() (Membership, bool) {
	if it.pos >= len(it.sets) {
		return nil, false
	}
	m := it.sets[it.pos]
	it.pos++
	return m, true
}

// Len returns the total number of sets this iterator will yield.
func (it *FamilyIterator) Len() int { return len(it.sets) }

// ElementIterator walks the single path of a single-path ZDD — one
// that is a chain from the root to HI where every inner node's hi
// child is on the path to HI — yielding the variables along it in
// ordering order. Spec §4.5: "used by the set-pool façade". Elements
// returns an error if x is not single-path.
type ElementIterator struct {
	vars []int32
	pos  int
}

// Elements returns an ElementIterator over x's single path. x must
// denote a family with exactly one member (a single-path ZDD); any
// other shape is a KindInvalidArgument error.
func (f *Factory) Elements(x ZDD) (*ElementIterator, error) {
	if err := f.checkOwn(x); err != nil {
		return nil, err
	}
	var vars []int32
	r := x.Ref()
	for !f.e.IsTerminal(r) {
		if f.e.Lo(r) != f.e.Zero() {
			return nil, engine.NewInvalidArgument("Elements: not a single-path ZDD")
		}
		vars = append(vars, f.e.Var(r))
		r = f.e.Hi(r)
	}
	if r != f.e.One() {
		return nil, engine.NewInvalidArgument("Elements: not a single-path ZDD")
	}
	return &ElementIterator{vars: vars}, nil
}

// Next returns the next element and true, or (0, false) once
// exhausted.
func (it *ElementIterator) Next() (int, bool) {
	if it.pos >= len(it.vars) {
		return 0, false
	}
	v := it.vars[it.pos]
	it.pos++
	return int(v), true
}

// Len returns the number of elements in the path (the set's size).
func (it *ElementIterator) Len() int { return len(it.vars) }
