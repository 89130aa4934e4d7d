// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package convert

import (
	"github.com/lattice-dd/ddkit/bdd"
	"github.com/lattice-dd/ddkit/internal/engine"
	"github.com/lattice-dd/ddkit/zdd"
)

// BDDToZDD rebuilds x, a BDD handle, as a ZDD over zf: the family whose
// members are exactly the satisfying assignments of x, each read as
// the set of variables assigned true. zf must have the same number of
// variables as x's owning bdd.Factory.
//
// This is the reference realisation spec §4.6 asks for: enumerate and
// rebuild, not a structure-preserving transform. x's don't-care
// branches are expanded into every full assignment they cover, since a
// ZDD has no don't-care value — an omitted variable always means
// "absent from this set", never "either value".
func BDDToZDD(x bdd.BDD, zf *zdd.Factory) (zdd.ZDD, error) {
	ef := x.Factory()
	if ef.N() != zf.Varnum() {
		return zdd.ZDD{}, engine.NewInvalidArgument(
			"BDDToZDD: variable count mismatch (%d vs %d)", ef.N(), zf.Varnum())
	}
	var sets [][]int
	enumerateBDD(ef, x.Ref(), func(vec []bool) {
		var s []int
		for v, b := range vec {
			if b {
				s = append(s, v)
			}
		}
		sets = append(sets, s)
	})
	return zf.Family(sets)
}

// enumerateBDD yields, via yield, every full-length boolean vector
// satisfying r: at each ordering position, a node whose own variable
// is not the position being visited is a don't-care there, and both
// branches are explored.
func enumerateBDD(ef *engine.Factory, r engine.Ref, yield func([]bool)) {
	n := ef.N()
	vec := make([]bool, n)
	var rec func(pos int32, cur engine.Ref)
	rec = func(pos int32, cur engine.Ref) {
		if pos == int32(n) {
			if cur == ef.One() {
				out := make([]bool, n)
				copy(out, vec)
				yield(out)
			}
			return
		}
		v := ef.VarAt(pos)
		lo, hi := cur, cur
		if !ef.IsTerminal(cur) && ef.Var(cur) == v {
			lo, hi = ef.Lo(cur), ef.Hi(cur)
		}
		vec[v] = false
		rec(pos+1, lo)
		vec[v] = true
		rec(pos+1, hi)
	}
	rec(0, r)
}

// ZDDToBDD rebuilds x, a ZDD handle, as a BDD over bf: the Boolean
// function whose minterms are exactly x's member sets, each read as an
// assignment (true for elements in the set, false otherwise). bf must
// have the same number of variables as x's owning zdd.Factory.
func ZDDToBDD(x zdd.ZDD, bf *bdd.Factory) (bdd.BDD, error) {
	zf := x.Factory()
	if zf.N() != bf.Varnum() {
		return bdd.BDD{}, engine.NewInvalidArgument(
			"ZDDToBDD: variable count mismatch (%d vs %d)", zf.N(), bf.Varnum())
	}
	result := bf.False()
	err := walkZDDSets(zf, x.Ref(), make([]bool, bf.Varnum()), func(vec []bool) error {
		term, err := bf.Assignment(vec)
		if err != nil {
			return err
		}
		result, err = bf.Or(result, term)
		return err
	})
	if err != nil {
		return bdd.BDD{}, err
	}
	return result, nil
}

// walkZDDSets enumerates x's member sets directly against the engine
// (rather than through zdd.Factory.Sets) so ZDDToBDD can build its
// BDD incrementally instead of materialising the whole family first.
func walkZDDSets(zf *engine.Factory, r engine.Ref, vec []bool, visit func([]bool) error) error {
	if r == zf.One() {
		return visit(vec)
	}
	if r == zf.Zero() {
		return nil
	}
	v := zf.Var(r)
	vec[v] = false
	if err := walkZDDSets(zf, zf.Lo(r), vec, visit); err != nil {
		return err
	}
	vec[v] = true
	if err := walkZDDSets(zf, zf.Hi(r), vec, visit); err != nil {
		return err
	}
	vec[v] = false
	return nil
}
