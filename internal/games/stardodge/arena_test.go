package stardodge

import "testing"

func TestArenaInsertGetRemove(t *testing.T) {
	var a Arena[Star]
	id := a.Insert(Star{})
	if a.Len() != 1 {
		t.Fatalf("Len() = %d, expected 1", a.Len())
	}
	s, ok := a.Get(id)
	if !ok || s == nil {
		t.Fatal("Get should find a freshly inserted entity")
	}
	s.Pos.X = 7
	if got, _ := a.Get(id); got.Pos.X != 7 {
		t.Error("Get should return a pointer into the arena")
	}

	if !a.Remove(id) {
		t.Fatal("Remove should succeed for a live id")
	}
	if a.Remove(id) {
		t.Error("second Remove should report false")
	}
	if _, ok := a.Get(id); ok {
		t.Error("removed id should not resolve")
	}
	if a.Len() != 0 {
		t.Errorf("Len() = %d after remove, expected 0", a.Len())
	}
}

func TestArenaStaleIDAfterReuse(t *testing.T) {
	var a Arena[Enemy]
	old := a.Insert(Enemy{})
	a.Remove(old)
	fresh := a.Insert(Enemy{})

	if old == fresh {
		t.Fatal("reused slot must get a new generation")
	}
	if isLive(a, old) {
		t.Error("stale id should not resolve after its slot is reused")
	}
	if !isLive(a, fresh) {
		t.Error("fresh id should resolve")
	}
}

func TestArenaZeroIDNeverLive(t *testing.T) {
	var a Arena[Star]
	a.Insert(Star{})
	if isLive(a, EntityID{}) {
		t.Error("zero EntityID must never refer to a live entity")
	}
}

func TestArenaAllSkipsTombstones(t *testing.T) {
	var a Arena[Star]
	ids := make([]EntityID, 5)
	for i := range ids {
		ids[i] = a.Insert(Star{})
	}
	a.Remove(ids[1])
	a.Remove(ids[3])

	var seen []EntityID
	for id := range a.All() {
		seen = append(seen, id)
	}
	want := []EntityID{ids[0], ids[2], ids[4]}
	if len(seen) != len(want) {
		t.Fatalf("All() yielded %d entities, expected %d", len(seen), len(want))
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("All()[%d] = %v, expected %v", i, seen[i], want[i])
		}
	}
}

func isLive[T any](a *Arena[T], id EntityID) bool {
	_, ok := a.Get(id)
	return ok
}

func removeAll[T any](a *Arena[T]) {
	var ids []EntityID
	for id := range a.All() {
		ids = append(ids, id)
	}
	for _, id := range ids {
		a.Remove(id)
	}
}
