package bucket

import "testing"

func TestStable_AddGetRemove(t *testing.T) {
	b := New[string]()
	h1 := b.Add("a")
	h2 := b.Add("b")

	if v, ok := b.Get(h1); !ok || v != "a" {
		t.Fatalf("Get(h1) = %q, %v; want \"a\", true", v, ok)
	}
	if v, ok := b.Get(h2); !ok || v != "b" {
		t.Fatalf("Get(h2) = %q, %v; want \"b\", true", v, ok)
	}
	if b.Len() != 2 {
		t.Fatalf("Len() = %d; want 2", b.Len())
	}

	b.Remove(h1)
	if b.Contains(h1) {
		t.Fatal("h1 should no longer be live")
	}
	if b.Len() != 1 {
		t.Fatalf("Len() = %d; want 1", b.Len())
	}
}

func TestStable_FreedHandlesReusedLIFO(t *testing.T) {
	b := New[int]()
	h0 := b.Add(0)
	h1 := b.Add(1)
	h2 := b.Add(2)

	b.Remove(h1)
	b.Remove(h2)

	// LIFO: h2 should be reused first.
	reused1 := b.Add(20)
	if reused1 != h2 {
		t.Errorf("first reused handle = %d; want %d (LIFO)", reused1, h2)
	}
	reused2 := b.Add(10)
	if reused2 != h1 {
		t.Errorf("second reused handle = %d; want %d (LIFO)", reused2, h1)
	}

	if v, ok := b.Get(h0); !ok || v != 0 {
		t.Fatalf("Get(h0) = %d, %v; want 0, true", v, ok)
	}
}

func TestStable_RemoveOutOfRangeIsNoOp(t *testing.T) {
	b := New[int]()
	b.Add(1)
	b.Remove(99)
	if b.Len() != 1 {
		t.Fatalf("Len() = %d; want 1", b.Len())
	}
}

func TestStable_ClearInvalidatesHandles(t *testing.T) {
	b := New[int]()
	h := b.Add(42)
	b.Clear()
	if b.Contains(h) {
		t.Fatal("handle should be invalid after Clear")
	}
	if b.Len() != 0 {
		t.Fatalf("Len() = %d; want 0", b.Len())
	}
}

func TestStable_EnsureCapacityGrowsCapImmediately(t *testing.T) {
	b := New[int]()
	b.Add(1)
	b.EnsureCapacity(10)
	if b.Cap() < 10 {
		t.Fatalf("Cap() = %d; want >= 10 immediately after EnsureCapacity", b.Cap())
	}
	if b.Len() != 1 {
		t.Fatalf("Len() = %d; want 1 (EnsureCapacity must not change live count)", b.Len())
	}

	// The pre-grown slots must be reused by subsequent Adds, not appended past Cap().
	capBefore := b.Cap()
	for i := 0; i < 9; i++ {
		b.Add(i)
	}
	if b.Cap() != capBefore {
		t.Fatalf("Cap() grew to %d after filling pre-grown slots; want unchanged %d", b.Cap(), capBefore)
	}
}
