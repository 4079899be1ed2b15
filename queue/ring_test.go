package queue

import "testing"

func TestRing_EmptyYieldsNothing(t *testing.T) {
	r := NewRing[int](4)
	if r.Len() != 0 {
		t.Fatalf("Len() = %d; want 0", r.Len())
	}
	if _, ok := r.PopFront(); ok {
		t.Fatal("PopFront on empty ring should return ok=false")
	}
}

func TestRing_FIFOOrder(t *testing.T) {
	r := NewRing[int](4)
	for i := 0; i < 10; i++ {
		r.PushBack(i)
	}
	for i := 0; i < 10; i++ {
		v, ok := r.PopFront()
		if !ok {
			t.Fatalf("PopFront() ok=false at i=%d", i)
		}
		if v != i {
			t.Errorf("PopFront() = %d; want %d", v, i)
		}
	}
	if _, ok := r.PopFront(); ok {
		t.Fatal("ring should be empty after draining")
	}
}

func TestRing_WrapAroundThenGrow(t *testing.T) {
	r := NewRing[int](4)
	// Fill and drain partially to move head away from 0, then push past
	// capacity to exercise the wrap-and-grow path.
	for i := 0; i < 3; i++ {
		r.PushBack(i)
	}
	r.PopFront()
	r.PopFront()
	for i := 3; i < 12; i++ {
		r.PushBack(i)
	}
	if r.Len() != 10 {
		t.Fatalf("Len() = %d; want 10", r.Len())
	}
	want := 2
	for r.Len() > 0 {
		v, _ := r.PopFront()
		if v != want {
			t.Errorf("PopFront() = %d; want %d", v, want)
		}
		want++
	}
}

func TestRing_CapacityNeverShrinks(t *testing.T) {
	r := NewRing[int](4)
	for i := 0; i < 100; i++ {
		r.PushBack(i)
	}
	capAfterGrowth := r.Cap()
	r.Clear()
	if r.Cap() != capAfterGrowth {
		t.Errorf("Cap() after Clear = %d; want %d (never shrinks)", r.Cap(), capAfterGrowth)
	}
}

func TestStack_LIFOOrderFromZeroCapacity(t *testing.T) {
	s := NewStack[int](0)
	for i := 0; i < 5; i++ {
		s.Push(i)
	}
	for i := 4; i >= 0; i-- {
		v, ok := s.Pop()
		if !ok || v != i {
			t.Errorf("Pop() = %d, %v; want %d, true", v, ok, i)
		}
	}
	if _, ok := s.Pop(); ok {
		t.Fatal("Pop on empty stack should return ok=false")
	}
}

func TestStack_PeekDoesNotRemoveFromZeroCapacity(t *testing.T) {
	s := NewStack[string](0)
	s.Push("a")
	s.Push("b")
	if v, ok := s.Peek(); !ok || v != "b" {
		t.Fatalf("Peek() = %q, %v; want \"b\", true", v, ok)
	}
	if s.Len() != 2 {
		t.Fatalf("Len() = %d; want 2", s.Len())
	}
}
