package queue

import "testing"

func TestStack_EmptyYieldsNothing(t *testing.T) {
	s := NewStack[int](4)
	if s.Len() != 0 {
		t.Fatalf("Len() = %d; want 0", s.Len())
	}
	if _, ok := s.Pop(); ok {
		t.Fatal("Pop on empty stack should return ok=false")
	}
	if _, ok := s.Peek(); ok {
		t.Fatal("Peek on empty stack should return ok=false")
	}
}

func TestStack_LIFOOrder(t *testing.T) {
	s := NewStack[int](2)
	for i := 0; i < 10; i++ {
		s.Push(i)
	}
	for i := 9; i >= 0; i-- {
		v, ok := s.Pop()
		if !ok {
			t.Fatalf("Pop() ok=false at expected value %d", i)
		}
		if v != i {
			t.Errorf("Pop() = %d; want %d", v, i)
		}
	}
	if _, ok := s.Pop(); ok {
		t.Fatal("stack should be empty after draining")
	}
}

func TestStack_PeekDoesNotRemove(t *testing.T) {
	s := NewStack[string](4)
	s.Push("a")
	s.Push("b")

	v, ok := s.Peek()
	if !ok || v != "b" {
		t.Fatalf("Peek() = (%q, %v); want (\"b\", true)", v, ok)
	}
	if s.Len() != 2 {
		t.Fatalf("Len() after Peek = %d; want 2", s.Len())
	}
	v, ok = s.Pop()
	if !ok || v != "b" {
		t.Fatalf("Pop() = (%q, %v); want (\"b\", true)", v, ok)
	}
}

func TestStack_ClearResetsButKeepsCapacity(t *testing.T) {
	s := NewStack[int](4)
	for i := 0; i < 5; i++ {
		s.Push(i)
	}
	s.Clear()
	if s.Len() != 0 {
		t.Fatalf("Len() after Clear = %d; want 0", s.Len())
	}
	if _, ok := s.Pop(); ok {
		t.Fatal("Pop after Clear should return ok=false")
	}
	s.Push(42)
	v, ok := s.Pop()
	if !ok || v != 42 {
		t.Fatalf("Pop() after reuse = (%d, %v); want (42, true)", v, ok)
	}
}

func TestStack_NegativeCapacityClampsToZero(t *testing.T) {
	s := NewStack[int](-3)
	s.Push(1)
	if v, ok := s.Pop(); !ok || v != 1 {
		t.Fatalf("Pop() = (%d, %v); want (1, true)", v, ok)
	}
}
