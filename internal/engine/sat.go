// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package engine

import "math"

// SatAdd adds a and b, saturating at math.MaxUint64 instead of
// wrapping. Spec §9 flags 32-bit COUNT overflow as unhandled in the
// source and asks implementers to pick a well-defined behaviour; we
// widen to 64 bits (see bdd.Count/zdd.Count) and make the remaining,
// much less likely, overflow saturate rather than wrap, since a silent
// wrap would be a worse surprise for a counting API than a clamped
// value.
func SatAdd(a, b uint64) uint64 {
	s := a + b
	if s < a {
		return math.MaxUint64
	}
	return s
}

// SatMul multiplies a and b, saturating at math.MaxUint64.
func SatMul(a, b uint64) uint64 {
	if a == 0 || b == 0 {
		return 0
	}
	p := a * b
	if p/a != b {
		return math.MaxUint64
	}
	return p
}

// SatShiftLeft computes 2^k, saturating at math.MaxUint64 for k >= 64.
func SatShiftLeft(k int32) uint64 {
	if k < 0 {
		k = 0
	}
	if k >= 64 {
		return math.MaxUint64
	}
	return uint64(1) << uint(k)
}
