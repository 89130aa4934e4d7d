// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zdd

import (
	"math/big"

	"github.com/lattice-dd/ddkit/internal/engine"
)

// Count returns the number of sets in x's family, as a saturating
// uint64. Unlike bdd.Count, there is no 2^k adjustment for skipped
// ordering positions: zero-suppression means an omitted variable is
// absent from every set in that subtree, not a don't-care over two
// equally-weighted branches (spec §4.5's COUNT row makes this
// distinction explicit). The recursion bottoms out by comparing r
// against the LO and HI terminals by identity, never by variable id,
// and the BDD and ZDD counting routines are kept separate rather than
// sharing one generic Count across variants.
func (f *Factory) Count(x ZDD) (uint64, error) {
	if err := f.checkOwn(x); err != nil {
		return 0, err
	}
	memo := make(map[engine.Ref]uint64)
	var rec func(r engine.Ref) uint64
	rec = func(r engine.Ref) uint64 {
		if r == f.e.Zero() {
			return 0
		}
		if r == f.e.One() {
			return 1
		}
		if v, ok := memo[r]; ok {
			return v
		}
		total := engine.SatAdd(rec(f.e.Lo(r)), rec(f.e.Hi(r)))
		memo[r] = total
		return total
	}
	return rec(x.Ref()), nil
}

// CountBig is the exact, arbitrary-precision counterpart of Count.
func (f *Factory) CountBig(x ZDD) (*big.Int, error) {
	if err := f.checkOwn(x); err != nil {
		return nil, err
	}
	memo := make(map[engine.Ref]*big.Int)
	var rec func(r engine.Ref) *big.Int
	rec = func(r engine.Ref) *big.Int {
		if r == f.e.Zero() {
			return big.NewInt(0)
		}
		if r == f.e.One() {
			return big.NewInt(1)
		}
		if v, ok := memo[r]; ok {
			return v
		}
		total := new(big.Int).Add(rec(f.e.Lo(r)), rec(f.e.Hi(r)))
		memo[r] = total
		return total
	}
	return rec(x.Ref()), nil
}
