// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import "github.com/lattice-dd/ddkit/internal/engine"

// Assign is one full satisfying assignment: Assign[v] is the truth
// value forced on variable v (spec §4.4's "iteration over satisfying
// assignments" — §8 property 7 requires the iterator to produce
// exactly COUNT vectors, one per full assignment, so a variable a path
// leaves unconstrained must be expanded over both values rather than
// reported once as a don't-care).
type Assign []int8

const (
	// DontCare is never present in a vector AllSat/Satisfy hands to a
	// caller; it is only used internally to pre-fill the working buffer.
	DontCare int8 = -1
	// False and True mark a variable's forced value in an assignment.
	False int8 = 0
	True  int8 = 1
)

// AllSat calls visit once for every full satisfying assignment of x —
// not once per DAG path, but once per 2^k expansion of each path's k
// don't-care variables — passing a buffer indexed by variable id that
// visit must not retain past the call (each call reuses the same
// backing array; copy it if you need to keep it). AllSat stops and
// returns visit's error as soon as visit returns one.
//
// Grounded on the teacher's BDD.Allsat/allsat (operations.go), with the
// don't-care spacer loop replaced by a two-way branch over each skipped
// ordering position: the teacher's Allsat reports a profile per path,
// leaving don't-care entries as -1, which is the right contract for a
// debugging printout but not for spec §4.4/§8's iterator, which must
// enumerate every assignment the BDD accepts.
func (f *Factory) AllSat(x BDD, visit func(Assign) error) error {
	if err := f.checkOwn(x); err != nil {
		return err
	}
	prof := make(Assign, f.Varnum())
	for i := range prof {
		prof[i] = DontCare
	}
	return f.allsat(x.Ref(), 0, prof, visit)
}

// allsat walks the ordering positions [pos, Varnum) in lockstep with r:
// while pos is strictly before r's own position (or r is the One
// terminal and pos hasn't yet reached the end), the variable at pos is
// unconstrained by the diagram, so both of its values are tried: once
// every position has been assigned, exactly one full vector has been
// built and visit is called.
func (f *Factory) allsat(r engine.Ref, pos int32, prof Assign, visit func(Assign) error) error {
	if r == f.e.Zero() {
		return nil
	}
	n := int32(f.Varnum())
	if pos >= n {
		return visit(prof)
	}
	if r != f.e.One() && f.e.OrderIndex(f.e.Var(r)) == pos {
		v := f.e.Var(r)
		prof[v] = False
		if err := f.allsat(f.e.Lo(r), pos+1, prof, visit); err != nil {
			return err
		}
		prof[v] = True
		if err := f.allsat(f.e.Hi(r), pos+1, prof, visit); err != nil {
			return err
		}
		prof[v] = DontCare
		return nil
	}
	// r is either the One terminal or an inner node whose own variable
	// sits further down the ordering: the variable at pos is a
	// don't-care on this path, so branch it over both values.
	v := f.e.VarAt(pos)
	prof[v] = False
	if err := f.allsat(r, pos+1, prof, visit); err != nil {
		return err
	}
	prof[v] = True
	if err := f.allsat(r, pos+1, prof, visit); err != nil {
		return err
	}
	prof[v] = DontCare
	return nil
}

// Iterator walks every satisfying assignment of a BDD's root, computed
// eagerly at construction (the DAG this module builds is small enough,
// by construction of the domain, that this is simpler and no less
// correct than a resumable stack-based walk). Not safe for concurrent
// use.
type Iterator struct {
	assigns []Assign
	pos     int
}

// Satisfy returns an Iterator over x's satisfying assignments.
func (f *Factory) Satisfy(x BDD) (*Iterator, error) {
	it := &Iterator{}
	err := f.AllSat(x, func(a Assign) error {
		cp := make(Assign, len(a))
		copy(cp, a)
		it.assigns = append(it.assigns, cp)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return it, nil
}

// Next returns the next assignment and true, or (nil, false) once
// exhausted. Each returned Assign is a fresh copy, safe to retain.
func (it *Iterator) Next() (Assign, bool) {
	if it.pos >= len(it.assigns) {
		return nil, false
	}
	a := it.assigns[it.pos]
	it.pos++
	return a, true
}

// Len returns the total number of satisfying assignments this iterator
// will yield, irrespective of how many have already been consumed by
// Next.
func (it *Iterator) Len() int { return len(it.assigns) }
