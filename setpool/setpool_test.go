// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package setpool_test

import (
	"testing"

	"github.com/lattice-dd/ddkit/setpool"
)

// TestS6SetSemantics exercises spec §8's S6: domain size 8, two sets,
// add/remove, and that String/Size/Contains agree with plain Go map
// semantics throughout.
func TestS6SetSemantics(t *testing.T) {
	pool, err := setpool.NewPool[string](8)
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	a := pool.NewSet()
	b := pool.NewSet()

	elems := []string{"alice", "bob", "carol", "dave"}
	model := make(map[string]bool)
	for _, e := range elems {
		if _, err := a.Add(e); err != nil {
			t.Fatalf("Add(%s): %v", e, err)
		}
		model[e] = true
	}

	if sz, err := a.Size(); err != nil || sz != len(model) {
		t.Fatalf("Size = %d, %v; want %d, nil", sz, err, len(model))
	}
	for _, e := range elems {
		ok, err := a.Contains(e)
		if err != nil || !ok {
			t.Fatalf("Contains(%s) = %v, %v; want true, nil", e, ok, err)
		}
	}
	if ok, err := a.Contains("erin"); err != nil || ok {
		t.Fatalf("Contains(erin) = %v, %v; want false, nil", ok, err)
	}

	changed, err := a.Remove("bob")
	if err != nil {
		t.Fatalf("Remove(bob): %v", err)
	}
	if !changed {
		t.Fatal("Remove(bob) should report a change")
	}
	delete(model, "bob")
	if ok, _ := a.Contains("bob"); ok {
		t.Fatal("bob should no longer be a member")
	}

	changed, err = a.Remove("bob")
	if err != nil {
		t.Fatalf("Remove(bob) again: %v", err)
	}
	if changed {
		t.Fatal("removing an absent element should report no change")
	}

	if _, err := b.AddAll([]string{"carol", "erin"}); err != nil {
		t.Fatalf("AddAll: %v", err)
	}
	if ok, err := b.ContainsAll([]string{"carol"}); err != nil || !ok {
		t.Fatalf("ContainsAll([carol]) = %v, %v; want true, nil", ok, err)
	}
	if ok, err := b.ContainsAll([]string{"carol", "dave"}); err != nil || ok {
		t.Fatalf("ContainsAll([carol dave]) = %v, %v; want false, nil", ok, err)
	}

	it, err := a.Iterator()
	if err != nil {
		t.Fatalf("Iterator: %v", err)
	}
	got := make(map[string]bool)
	for {
		e, ok, err := it.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if !ok {
			break
		}
		got[e] = true
	}
	if len(got) != len(model) {
		t.Fatalf("iterator produced %v, want %v", got, model)
	}
	for e := range model {
		if !got[e] {
			t.Fatalf("iterator missing %s", e)
		}
	}

	str := a.String()
	if str == "" || str == "{}" {
		t.Fatalf("String() = %q, want a non-empty rendering", str)
	}
}

func TestIteratorDetectsConcurrentModification(t *testing.T) {
	pool, err := setpool.NewPool[int](4)
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	s := pool.NewSet()
	if _, err := s.Add(1); err != nil {
		t.Fatalf("Add: %v", err)
	}
	it, err := s.Iterator()
	if err != nil {
		t.Fatalf("Iterator: %v", err)
	}
	if _, err := s.Add(2); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, _, err := it.Next(); err == nil {
		t.Fatal("expected a concurrent-modification error")
	}
}

func TestRetainAll(t *testing.T) {
	pool, err := setpool.NewPool[int](8)
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	s := pool.NewSet()
	if _, err := s.AddAll([]int{1, 2, 3, 4}); err != nil {
		t.Fatalf("AddAll: %v", err)
	}
	changed, err := s.RetainAll([]int{2, 4, 6})
	if err != nil {
		t.Fatalf("RetainAll: %v", err)
	}
	if !changed {
		t.Fatal("RetainAll should report a change")
	}
	for _, want := range []int{2, 4} {
		ok, err := s.Contains(want)
		if err != nil || !ok {
			t.Fatalf("Contains(%d) = %v, %v; want true, nil", want, ok, err)
		}
	}
	for _, absent := range []int{1, 3} {
		ok, err := s.Contains(absent)
		if err != nil || ok {
			t.Fatalf("Contains(%d) = %v, %v; want false, nil", absent, ok, err)
		}
	}
	if sz, err := s.Size(); err != nil || sz != 2 {
		t.Fatalf("Size = %d, %v; want 2, nil", sz, err)
	}
}

func TestDomainCapacityExhausted(t *testing.T) {
	pool, err := setpool.NewPool[int](2)
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	s := pool.NewSet()
	if _, err := s.Add(10); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := s.Add(20); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := s.Add(30); err == nil {
		t.Fatal("expected a capacity-exhausted error")
	}
}
