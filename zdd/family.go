// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zdd

import "github.com/lattice-dd/ddkit/internal/engine"

// Family builds the ZDD denoting the explicit family {sets[0], ...,
// sets[len(sets)-1]}, each a slice of element ids in [0, Varnum).
// Duplicate sets in the input collapse to one member, matching set
// semantics. Grounded on spec §4.5's "family constructor": recursion
// over the variable ordering, partitioning on whether each remaining
// set contains the current variable.
func (f *Factory) Family(sets [][]int) (ZDD, error) {
	bitsets := make([]map[int32]bool, len(sets))
	for i, s := range sets {
		m := make(map[int32]bool, len(s))
		for _, e := range s {
			if err := f.e.CheckVar(e); err != nil {
				return ZDD{}, err
			}
			m[int32(e)] = true
		}
		bitsets[i] = m
	}
	r, err := f.buildFamily(bitsets, 0)
	if err != nil {
		return ZDD{}, err
	}
	return ZDD{f.e.Mint(r)}, nil
}

// buildFamily recurses over ordering positions [pos, Varnum), each
// time partitioning the remaining family into the sets that contain
// the variable at pos (stripped of it) and the sets that do not.
func (f *Factory) buildFamily(sets []map[int32]bool, pos int32) (engine.Ref, error) {
	if pos >= int32(f.Varnum()) {
		if len(sets) > 0 {
			return f.e.One(), nil
		}
		return f.e.Zero(), nil
	}
	v := f.e.VarAt(pos)
	var without, with []map[int32]bool
	for _, s := range sets {
		if s[v] {
			with = append(with, s)
		} else {
			without = append(without, s)
		}
	}
	lo, err := f.buildFamily(without, pos+1)
	if err != nil {
		return engine.NoRef, err
	}
	f.e.PushRef(lo)
	hi, err := f.buildFamily(with, pos+1)
	if err != nil {
		f.e.PopRef(1)
		return engine.NoRef, err
	}
	f.e.PushRef(hi)
	r, err := f.e.MakeNode(v, lo, hi)
	f.e.PopRef(2)
	return r, err
}
