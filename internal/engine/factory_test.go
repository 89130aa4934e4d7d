// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package engine

import (
	"runtime"
	"testing"
)

func bddReduce(lo, hi Ref) bool { return lo == hi }
func zddReduce(lo, hi Ref) bool { return hi == mkref(0, 0) }

func TestNewRejectsMalformedOrdering(t *testing.T) {
	if _, err := New([]int{0, 0, 1}, bddReduce); err == nil {
		t.Fatal("expected an error for a repeated variable")
	}
	if _, err := New([]int{0, 1, 3}, bddReduce); err == nil {
		t.Fatal("expected an error for an out-of-range variable")
	}
	if _, err := New(nil, bddReduce); err == nil {
		t.Fatal("expected an error for an empty ordering")
	}
}

func TestMakeNodeShares(t *testing.T) {
	f, err := New([]int{0, 1}, bddReduce)
	if err != nil {
		t.Fatal(err)
	}
	a, err := f.MakeNode(1, f.Zero(), f.One())
	if err != nil {
		t.Fatal(err)
	}
	b, err := f.MakeNode(1, f.Zero(), f.One())
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Fatalf("expected hash-consing to share identical nodes, got %v != %v", a, b)
	}
}

func TestMakeNodeReducesBDD(t *testing.T) {
	f, err := New([]int{0, 1}, bddReduce)
	if err != nil {
		t.Fatal(err)
	}
	r, err := f.MakeNode(0, f.One(), f.One())
	if err != nil {
		t.Fatal(err)
	}
	if r != f.One() {
		t.Fatalf("expected lo==hi to reduce to the shared child, got %v", r)
	}
}

func TestMakeNodeReducesZDD(t *testing.T) {
	f, err := New([]int{0, 1}, zddReduce)
	if err != nil {
		t.Fatal(err)
	}
	r, err := f.MakeNode(0, f.One(), f.Zero())
	if err != nil {
		t.Fatal(err)
	}
	if r != f.One() {
		t.Fatalf("expected hi==Zero to reduce to lo, got %v", r)
	}
}

func TestGCReclaimsUnreferencedNodes(t *testing.T) {
	// Exercises the mark-sweep pass directly (Factory.gc), independent of
	// when the Go runtime happens to run AddCleanup callbacks: a node
	// with refcount 0 and unreachable from any refcount>0 node must be
	// freed, while a node with a live external reference must survive.
	f, err := New([]int{0, 1, 2, 3}, bddReduce)
	if err != nil {
		t.Fatal(err)
	}
	orphan, err := f.MakeNode(3, f.Zero(), f.One())
	if err != nil {
		t.Fatal(err)
	}
	kept, err := f.MakeNode(2, f.Zero(), f.One())
	if err != nil {
		t.Fatal(err)
	}
	h := f.Mint(kept) // holds kept's refcount at 1
	defer runtime.KeepAlive(h)

	f.mu.Lock()
	f.gc()
	f.mu.Unlock()

	if f.Live(orphan) {
		t.Fatalf("expected unreferenced node %v to be reclaimed", orphan)
	}
	if !f.Live(kept) {
		t.Fatalf("expected externally referenced node %v to survive", kept)
	}
}

func TestHandleEqualityIsReferenceBased(t *testing.T) {
	f, err := New([]int{0, 1}, bddReduce)
	if err != nil {
		t.Fatal(err)
	}
	r, err := f.MakeNode(0, f.Zero(), f.One())
	if err != nil {
		t.Fatal(err)
	}
	h1 := f.Mint(r)
	h2 := f.Mint(r)
	if !h1.Equal(h2) {
		t.Fatal("two independently minted handles over the same node should be Equal")
	}
	if h1.Hash() != h2.Hash() {
		t.Fatal("Equal handles must hash alike")
	}
}
