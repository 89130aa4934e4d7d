// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package engine

import (
	"fmt"
	"runtime"
)

// cell is the one-per-mint indirection that runtime.AddCleanup attaches
// to. Copying a Handle value copies the pointer to its cell, never
// re-triggering refcounting; two Handles independently minted over the
// same underlying node each get their own cell and therefore each hold
// the node alive on their own, exactly as two independent external
// references should (spec §3 "Ownership": "a node may be reclaimed when
// (i) no handle references it...").
type cell struct {
	ref Ref
}

// Handle is an immutable, externally-visible reference onto one node of
// a Factory's universe graph — the common shape bdd.BDD and zdd.ZDD are
// built from. Handle itself carries no Boolean/set-family semantics;
// bdd and zdd attach those by construction, not by subtyping Handle.
type Handle struct {
	f *Factory
	c *cell
}

// Mint wraps r as an externally-visible, independently-tracked handle:
// the underlying node's refcount is incremented (skipped for terminals,
// which are pinned for the Factory's lifetime), and a runtime cleanup
// is registered to decrement it again once the returned cell becomes
// unreachable.
func (f *Factory) Mint(r Ref) Handle {
	c := &cell{ref: r}
	if !f.IsTerminal(r) {
		f.mu.Lock()
		if f.live(r) {
			f.nodes[r.idx()].refcount++
		}
		f.mu.Unlock()
		runtime.AddCleanup(c, func(a cleanupArg) { a.f.release(a.r) }, cleanupArg{f, r})
	}
	return Handle{f: f, c: c}
}

type cleanupArg struct {
	f *Factory
	r Ref
}

// Factory returns the owning Factory.
func (h Handle) Factory() *Factory { return h.f }

// Ref returns the underlying node reference. Valid only against h's own
// Factory; comparing Refs from different Factory instances is
// meaningless even if numerically equal.
func (h Handle) Ref() Ref { return h.c.ref }

// SameFactory reports whether h and other were minted from the same
// Factory. Operations combining two Handles must check this first and
// raise KindInvalidArgument otherwise (spec §6 "Cross-factory operation
// attempted").
func (h Handle) SameFactory(other Handle) bool { return h.f == other.f }

// Equal implements the spec's "extensional equality ≡ reference
// equality": two handles denote the same function/family iff their
// head-node references are identical, regardless of which mint call
// produced either handle.
func (h Handle) Equal(other Handle) bool {
	return h.f == other.f && h.c.ref == other.c.ref
}

// Hash returns a stable hash consistent with Equal: equal handles,
// however independently minted, always hash alike.
func (h Handle) Hash() uint64 {
	return h.f.id*31 + uint64(h.c.ref)
}

// String gives a structural rendering: "var(lo,hi)" recursively, with
// LO/HI at the leaves, matching spec §6's stringification contract.
func (h Handle) String() string {
	return stringify(h.f, h.c.ref, make(map[Ref]string))
}

func stringify(f *Factory, r Ref, memo map[Ref]string) string {
	if r == f.Zero() {
		return "LO"
	}
	if r == f.One() {
		return "HI"
	}
	if s, ok := memo[r]; ok {
		return s
	}
	v := f.Var(r)
	lo := stringify(f, f.Lo(r), memo)
	hi := stringify(f, f.Hi(r), memo)
	s := fmt.Sprintf("%d(%s,%s)", v, lo, hi)
	memo[r] = s
	return s
}
