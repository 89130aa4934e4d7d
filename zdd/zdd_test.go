// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zdd_test

import (
	"testing"

	"github.com/lattice-dd/ddkit/zdd"
)

func TestS4FamilyCountAndIteration(t *testing.T) {
	f, err := zdd.New([]int{0, 1, 2, 3})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	fam, err := f.Family([][]int{
		{0},
		{0, 1},
		{0, 1, 2},
		{0, 1, 2, 3},
	})
	if err != nil {
		t.Fatalf("Family: %v", err)
	}
	n, err := f.Count(fam)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 4 {
		t.Fatalf("Count = %d, want 4", n)
	}

	it, err := f.Sets(fam)
	if err != nil {
		t.Fatalf("Sets: %v", err)
	}
	if it.Len() != 4 {
		t.Fatalf("iterator length = %d, want 4", it.Len())
	}
	seen := make(map[string]bool)
	for {
		m, ok := it.Next()
		if !ok {
			break
		}
		key := membershipKey(m)
		if seen[key] {
			t.Fatalf("set %v produced more than once", m)
		}
		seen[key] = true
	}
	want := [][]bool{
		{true, false, false, false},
		{true, true, false, false},
		{true, true, true, false},
		{true, true, true, true},
	}
	for _, w := range want {
		if !seen[membershipKey(w)] {
			t.Fatalf("expected set %v not produced", w)
		}
	}
}

func membershipKey(m []bool) string {
	b := make([]byte, len(m))
	for i, v := range m {
		if v {
			b[i] = '1'
		} else {
			b[i] = '0'
		}
	}
	return string(b)
}

func TestS5UnionDifference(t *testing.T) {
	f, err := zdd.New([]int{0, 1, 2, 3})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	a, err := f.Family([][]int{{0, 2}})
	if err != nil {
		t.Fatalf("Family: %v", err)
	}
	b, err := f.Family([][]int{{2, 3}})
	if err != nil {
		t.Fatalf("Family: %v", err)
	}
	union, err := f.Union(a, b)
	if err != nil {
		t.Fatalf("Union: %v", err)
	}
	result, err := f.Difference(union, a)
	if err != nil {
		t.Fatalf("Difference: %v", err)
	}
	if !result.Equal(b) {
		t.Fatalf("(a ∪ b) ∖ a != b by handle identity")
	}
}

func TestUnionIdempotentCommutativeAssociative(t *testing.T) {
	f, err := zdd.New([]int{0, 1, 2})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	a, _ := f.Element(0)
	b, _ := f.Element(1)
	c, _ := f.Element(2)

	uu, err := f.Union(a, a)
	if err != nil {
		t.Fatalf("Union: %v", err)
	}
	if !uu.Equal(a) {
		t.Fatal("union is not idempotent")
	}

	ab, _ := f.Union(a, b)
	ba, _ := f.Union(b, a)
	if !ab.Equal(ba) {
		t.Fatal("union is not commutative")
	}

	lhs, _ := f.Union(mustUnion(t, f, a, b), c)
	rhs, _ := f.Union(a, mustUnion(t, f, b, c))
	if !lhs.Equal(rhs) {
		t.Fatal("union is not associative")
	}
}

func mustUnion(t *testing.T, f *zdd.Factory, x, y zdd.ZDD) zdd.ZDD {
	t.Helper()
	r, err := f.Union(x, y)
	if err != nil {
		t.Fatalf("Union: %v", err)
	}
	return r
}

func TestDifferenceIdentities(t *testing.T) {
	f, err := zdd.New([]int{0, 1, 2})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	a, _ := f.Element(0)

	xx, err := f.Difference(a, a)
	if err != nil {
		t.Fatalf("Difference: %v", err)
	}
	if !xx.Equal(f.Empty()) {
		t.Fatal("x ∖ x != ∅")
	}

	x0, err := f.Difference(a, f.Empty())
	if err != nil {
		t.Fatalf("Difference: %v", err)
	}
	if !x0.Equal(a) {
		t.Fatal("x ∖ ∅ != x")
	}
}

func TestDoubleChangeIsIdentity(t *testing.T) {
	f, err := zdd.New([]int{0, 1, 2})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	a, err := f.Family([][]int{{0}, {1, 2}})
	if err != nil {
		t.Fatalf("Family: %v", err)
	}
	once, err := f.Change(a, 1)
	if err != nil {
		t.Fatalf("Change: %v", err)
	}
	twice, err := f.Change(once, 1)
	if err != nil {
		t.Fatalf("Change: %v", err)
	}
	if !twice.Equal(a) {
		t.Fatal("double CHANGE is not the identity")
	}
}

func TestSubsetReconstruction(t *testing.T) {
	f, err := zdd.New([]int{0, 1, 2})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	x, err := f.Family([][]int{{0}, {0, 1}, {1, 2}})
	if err != nil {
		t.Fatalf("Family: %v", err)
	}
	s1, err := f.Subset1(x, 1)
	if err != nil {
		t.Fatalf("Subset1: %v", err)
	}
	s0, err := f.Subset0(x, 1)
	if err != nil {
		t.Fatalf("Subset0: %v", err)
	}
	changed, err := f.Change(s1, 1)
	if err != nil {
		t.Fatalf("Change: %v", err)
	}
	recombined, err := f.Union(changed, s0)
	if err != nil {
		t.Fatalf("Union: %v", err)
	}
	if !recombined.Equal(x) {
		t.Fatal("SUBSET1/SUBSET0/CHANGE recombination did not reconstruct x")
	}
}

func TestCountConsistencyUnionIntersection(t *testing.T) {
	f, err := zdd.New([]int{0, 1, 2, 3})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	x, err := f.Family([][]int{{0}, {0, 1}})
	if err != nil {
		t.Fatalf("Family: %v", err)
	}
	y, err := f.Family([][]int{{0, 1}, {2, 3}})
	if err != nil {
		t.Fatalf("Family: %v", err)
	}
	union, err := f.Union(x, y)
	if err != nil {
		t.Fatalf("Union: %v", err)
	}
	inter, err := f.Intersection(x, y)
	if err != nil {
		t.Fatalf("Intersection: %v", err)
	}
	cu, _ := f.Count(union)
	ci, _ := f.Count(inter)
	cx, _ := f.Count(x)
	cy, _ := f.Count(y)
	if cu+ci != cx+cy {
		t.Fatalf("COUNT(x∪y) + COUNT(x∩y) = %d, want %d", cu+ci, cx+cy)
	}
}

func TestElementIteratorOnSinglePath(t *testing.T) {
	f, err := zdd.New([]int{0, 1, 2, 3})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	x, err := f.Family([][]int{{0, 2}})
	if err != nil {
		t.Fatalf("Family: %v", err)
	}
	it, err := f.Elements(x)
	if err != nil {
		t.Fatalf("Elements: %v", err)
	}
	var got []int
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, v)
	}
	if len(got) != 2 || got[0] != 0 || got[1] != 2 {
		t.Fatalf("Elements produced %v, want [0 2]", got)
	}
}

func TestElementsRejectsMultiPath(t *testing.T) {
	f, err := zdd.New([]int{0, 1, 2})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	x, err := f.Family([][]int{{0}, {1}})
	if err != nil {
		t.Fatalf("Family: %v", err)
	}
	if _, err := f.Elements(x); err == nil {
		t.Fatal("expected an error for a multi-path family")
	}
}

func TestCrossFactoryOperationRejected(t *testing.T) {
	f1, err := zdd.New([]int{0, 1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	f2, err := zdd.New([]int{0, 1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	a, _ := f1.Element(0)
	b, _ := f2.Element(0)
	if _, err := f1.Union(a, b); err == nil {
		t.Fatal("expected an error combining handles from different factories")
	}
}
