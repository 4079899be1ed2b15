package dict

import "testing"

func TestSet_InsertContainsRemove(t *testing.T) {
	s := NewSet[string]()
	for _, k := range []string{"a", "b", "c"} {
		ok, err := s.Insert(k)
		if err != nil || !ok {
			t.Fatalf("Insert(%q) = %v, %v; want true, nil", k, ok, err)
		}
	}
	if s.Len() != 3 {
		t.Fatalf("Len() = %d; want 3", s.Len())
	}
	if ok, _ := s.Insert("a"); ok {
		t.Fatal("duplicate Insert(a) = true; want false")
	}
	if !s.Remove("b") {
		t.Fatal("Remove(b) = false; want true")
	}
	if s.Contains("b") {
		t.Fatal("Contains(b) should be false after removal")
	}

	keys := s.Keys()
	if len(keys) != 2 {
		t.Fatalf("Keys() = %v; want 2 elements", keys)
	}
}

func TestSet_ClearAndReuse(t *testing.T) {
	s := NewSet[int]()
	for i := 0; i < 20; i++ {
		s.Insert(i)
	}
	s.Clear()
	if s.Len() != 0 {
		t.Fatalf("Len() after Clear = %d; want 0", s.Len())
	}
	if ok, err := s.Insert(5); err != nil || !ok {
		t.Fatalf("Insert after Clear = %v, %v", ok, err)
	}
	if !s.Contains(5) {
		t.Fatal("Contains(5) = false after reinsertion")
	}
}

func TestSet_EnsureCapacityThenTrim(t *testing.T) {
	s := NewSet[int]()
	s.EnsureCapacity(500)
	for i := 0; i < 50; i++ {
		s.Insert(i)
	}
	s.TrimExcess()
	if s.Len() != 50 {
		t.Fatalf("Len() after trim = %d; want 50", s.Len())
	}
	for i := 0; i < 50; i++ {
		if !s.Contains(i) {
			t.Errorf("Contains(%d) = false after trim", i)
		}
	}
}
