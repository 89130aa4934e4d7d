// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"math/big"

	"github.com/lattice-dd/ddkit/internal/engine"
)

// Count returns the number of satisfying assignments of x, as a
// saturating uint64 (spec §4.4's COUNT, widened per the §9 open
// question: the teacher's 32-bit counters are not preserved verbatim,
// since that overflow was flagged as unhandled rather than intended
// behaviour). Use CountBig for an exact arbitrary-precision result.
//
// Because reduction elides nodes whose two children would otherwise be
// identical, a single path through the DAG can represent 2^k
// assignments, where k counts the ordering positions skipped between a
// node and each child (or between the node and the end of the
// ordering, for a terminal child); Count folds that multiplier in at
// every step, per spec §4.4 "Don't-care handling for COUNT".
func (f *Factory) Count(x BDD) (uint64, error) {
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
		pos := f.e.OrderIndex(f.e.Var(r))
		lo, hi := f.e.Lo(r), f.e.Hi(r)
		loCount := engine.SatMul(rec(lo), engine.SatShiftLeft(f.gap(pos, lo)))
		hiCount := engine.SatMul(rec(hi), engine.SatShiftLeft(f.gap(pos, hi)))
		total := engine.SatAdd(loCount, hiCount)
		memo[r] = total
		return total
	}
	total := rec(x.Ref())
	return engine.SatMul(total, engine.SatShiftLeft(f.gapFromRoot(x.Ref()))), nil
}

// gap returns the number of ordering positions strictly between
// parentPos and child's variable (or the end of the ordering, if child
// is a terminal).
func (f *Factory) gap(parentPos int32, child engine.Ref) int32 {
	childPos := int32(f.Varnum())
	if !f.e.IsTerminal(child) {
		childPos = f.e.OrderIndex(f.e.Var(child))
	}
	return childPos - parentPos - 1
}

// gapFromRoot returns the number of ordering positions skipped above
// root: root's own ordering index if root is an inner node, or the
// whole variable count if root is a terminal (a constant function is a
// don't-care on every variable).
func (f *Factory) gapFromRoot(root engine.Ref) int32 {
	return f.gap(-1, root)
}

// CountBig is the exact, arbitrary-precision counterpart of Count,
// grounded directly on the teacher's Satcount (operations.go), which
// also returns *big.Int to sidestep the overflow spec §9 flags.
func (f *Factory) CountBig(x BDD) (*big.Int, error) {
	if err := f.checkOwn(x); err != nil {
		return nil, err
	}
	memo := make(map[engine.Ref]*big.Int)
	two := big.NewInt(2)
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
		pos := f.e.OrderIndex(f.e.Var(r))
		lo, hi := f.e.Lo(r), f.e.Hi(r)
		loCount := new(big.Int).Mul(rec(lo), new(big.Int).Exp(two, big.NewInt(int64(f.gap(pos, lo))), nil))
		hiCount := new(big.Int).Mul(rec(hi), new(big.Int).Exp(two, big.NewInt(int64(f.gap(pos, hi))), nil))
		total := new(big.Int).Add(loCount, hiCount)
		memo[r] = total
		return total
	}
	total := rec(x.Ref())
	return new(big.Int).Mul(total, new(big.Int).Exp(two, big.NewInt(int64(f.gapFromRoot(x.Ref()))), nil)), nil
}
