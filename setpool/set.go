// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package setpool

import (
	"fmt"
	"strings"

	"github.com/lattice-dd/ddkit/zdd"
)

// Set is a mutable, pool-typed set of T, backed by one single-path ZDD
// handle. The zero value is not usable; obtain one from Pool.NewSet.
type Set[T comparable] struct {
	pool *Pool[T]
	h    zdd.ZDD
}

// Contains reports whether e is a member.
//
// Realised with SUBSET1 rather than the generic INTERSECTION operator
// spec §4.7 names: a pooled set is a single-path ZDD (the family
// {S}, one member), and INTERSECTION({S}, {{e}}) tests family equality
// (S == {e}), not membership. SUBSET1(handle, var(e)) strips e from
// every member containing it, so it is non-empty exactly when e ∈ S —
// the test spec.md's "non-empty intersection" phrasing describes at
// the set level, realised correctly at the family level.
func (s *Set[T]) Contains(e T) (bool, error) {
	v, err := s.pool.varFor(e)
	if err != nil {
		return false, err
	}
	sub, err := s.pool.zf.Subset1(s.h, v)
	if err != nil {
		return false, err
	}
	return !sub.Equal(s.pool.zf.Empty()), nil
}

// Add inserts e and reports whether the set changed.
//
// Realised with CHANGE rather than the generic UNION operator spec
// §4.7 names: UNION({S}, {{e}}) produces the two-member family
// {S, {e}} when e ∉ S, not the single-member family {S ∪ {e}} a
// pooled set needs. CHANGE(handle, var(e)) toggles e's membership in
// S directly and preserves the single-path invariant; guarding it behind a prior Contains check gives the
// same change-detection UNION would have provided for free.
func (s *Set[T]) Add(e T) (bool, error) {
	has, err := s.Contains(e)
	if err != nil {
		return false, err
	}
	if has {
		return false, nil
	}
	v, err := s.pool.varFor(e)
	if err != nil {
		return false, err
	}
	next, err := s.pool.zf.Change(s.h, v)
	if err != nil {
		return false, err
	}
	s.h = next
	return true, nil
}

// Remove deletes e and reports whether the set changed. Mirrors Add's
// use of CHANGE over the generic DIFFERENCE operator, for the same
// single-path-invariant reason.
func (s *Set[T]) Remove(e T) (bool, error) {
	has, err := s.Contains(e)
	if err != nil {
		return false, err
	}
	if !has {
		return false, nil
	}
	v, err := s.pool.varFor(e)
	if err != nil {
		return false, err
	}
	next, err := s.pool.zf.Change(s.h, v)
	if err != nil {
		return false, err
	}
	s.h = next
	return true, nil
}

// AddAll inserts every element of c and reports whether the set
// changed.
func (s *Set[T]) AddAll(c []T) (bool, error) {
	changed := false
	for _, e := range c {
		ok, err := s.Add(e)
		if err != nil {
			return changed, err
		}
		changed = changed || ok
	}
	return changed, nil
}

// RemoveAll deletes every element of c and reports whether the set
// changed.
func (s *Set[T]) RemoveAll(c []T) (bool, error) {
	changed := false
	for _, e := range c {
		ok, err := s.Remove(e)
		if err != nil {
			return changed, err
		}
		changed = changed || ok
	}
	return changed, nil
}

// RetainAll keeps only the elements of s also present in c and reports
// whether the set changed.
func (s *Set[T]) RetainAll(c []T) (bool, error) {
	keep := make(map[T]bool, len(c))
	for _, e := range c {
		keep[e] = true
	}
	it, err := s.Iterator()
	if err != nil {
		return false, err
	}
	var toRemove []T
	for {
		e, ok, err := it.Next()
		if err != nil {
			return false, err
		}
		if !ok {
			break
		}
		if !keep[e] {
			toRemove = append(toRemove, e)
		}
	}
	return s.RemoveAll(toRemove)
}

// ContainsAll reports whether every element of c is a member.
func (s *Set[T]) ContainsAll(c []T) (bool, error) {
	for _, e := range c {
		ok, err := s.Contains(e)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// Size returns the number of members, using the single-path element
// count (spec §4.7: "ZDD element-count on the handle (valid because
// each set is represented as a single path)").
func (s *Set[T]) Size() (int, error) {
	it, err := s.pool.zf.Elements(s.h)
	if err != nil {
		return 0, err
	}
	return it.Len(), nil
}

// String renders the set's members in ordering order.
func (s *Set[T]) String() string {
	it, err := s.Iterator()
	if err != nil {
		return fmt.Sprintf("{error: %s}", err)
	}
	var parts []string
	for {
		e, ok, err := it.Next()
		if err != nil || !ok {
			break
		}
		parts = append(parts, fmt.Sprintf("%v", e))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
