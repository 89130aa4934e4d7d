// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package engine

// Ref is a generation-stamped reference to a slot in a Factory's node
// arena. The low 32 bits are the arena index; the high 32 bits are the
// generation the slot had when this Ref was minted. A Ref is only a
// valid pointer to "its" node while the slot's current generation still
// matches: once the slot is reclaimed and reused for an unrelated node,
// its generation is bumped, and every previously-minted Ref pointing at
// it becomes permanently stale.
//
// This is what lets the fixed-capacity operation cache (see Cache)
// store plain values without pinning anything: a cache hit whose
// operands or result refer to a reclaimed slot fails the generation
// check and is treated as a miss, exactly as spec §4.1 and §4.2
// require ("reclaimed nodes must never produce ghost hits").
type Ref uint64

func mkref(idx, gen uint32) Ref { return Ref(uint64(gen)<<32 | uint64(idx)) }

func (r Ref) idx() uint32 { return uint32(r) }
func (r Ref) gen() uint32 { return uint32(r >> 32) }

// NoRef is never a valid node reference; used as a sentinel for "no
// result yet" and for absent children in error paths.
const NoRef Ref = 0xFFFFFFFFFFFFFFFF

// ZeroRef is the LO terminal's reference, stable across every Factory:
// New always installs the two terminals at arena slots 0 and 1 with
// generation 0 and never reassigns them. Exported so a variant's
// reduction-rule predicate (built before any Factory exists, and
// passed into New) can recognise LO without a Factory in scope.
const ZeroRef Ref = 0

// node is one slot of a Factory's arena.
type node struct {
	vr       int32 // variable id, or sentinel for terminals
	lo, hi   Ref
	refcount int32 // external references, held by live Handles
	mark     bool  // scratch bit for mark-sweep
	gen      uint32
	alive    bool
}

type nodeKey struct {
	vr     int32
	lo, hi Ref
}
