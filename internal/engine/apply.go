// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package engine

// Memo implements the cache-consult/compute/cache-install shape of
// spec §4.3 ("Every operation reduces to a single recursive function"),
// factored out so bdd and zdd share one implementation of the
// memoisation envelope while keeping their own compute rules (the
// terminal short-circuits and the top-variable split of §4.4/§4.5) to
// themselves.
//
// key must already be commutativity-normalised by the caller when op is
// commutative (spec §3: "For commutative operators... the key treats
// (a,b) and (b,a) as equal"). Memo does not know which operators are
// commutative; that is a variant-level property.
func (f *Factory) Memo(key CacheKey, compute func() (Ref, error)) (Ref, error) {
	if r, ok := f.Cache.Get(key); ok && f.Live(r) {
		return r, nil
	}
	r, err := compute()
	if err != nil {
		return NoRef, err
	}
	f.Cache.Put(key, r)
	return r, nil
}

// TopSplit implements the top-variable rule shared by every binary
// node-node operator (spec §4.3): given two inner nodes a and b, it
// reports which variable to split on and the four children to recurse
// into, padding the side that does not have that variable with itself
// (so a caller always recurses symmetrically on (aLo, bLo) and
// (aHi, bHi)).
func (f *Factory) TopSplit(a, b Ref) (topVar int32, aLo, aHi, bLo, bHi Ref) {
	va, vb := f.topOrder(a), f.topOrder(b)
	switch {
	case va < vb:
		return f.Var(a), f.Lo(a), f.Hi(a), b, b
	case vb < va:
		return f.Var(b), a, a, f.Lo(b), f.Hi(b)
	default:
		return f.Var(a), f.Lo(a), f.Hi(a), f.Lo(b), f.Hi(b)
	}
}

// topOrder returns a ref's ordering index, with terminals sorting after
// every real variable (spec §3: "terminals have index +∞ for this
// comparison").
func (f *Factory) topOrder(r Ref) int32 {
	if f.IsTerminal(r) {
		return int32(f.N())
	}
	return f.OrderIndex(f.Var(r))
}
