package bvh

import "testing"

func TestBounds_UnionIsComponentwiseMinMax(t *testing.T) {
	a := box(0, 5, 0, 1, 6, 1)
	b := box(-1, 0, 2, 0, 1, 3)
	u := a.Union(b)
	want := box(-1, 0, 0, 1, 6, 3)
	if !u.Equal(want) {
		t.Fatalf("Union = %+v; want %+v", u, want)
	}
}

func TestBounds_IntersectsDisjointOnAnyAxis(t *testing.T) {
	a := box(0, 0, 0, 1, 1, 1)
	b := box(2, 0, 0, 3, 1, 1)
	if a.Intersects(b) {
		t.Fatal("disjoint on X axis should not intersect")
	}
	c := box(0.5, 0.5, 0.5, 1.5, 1.5, 1.5)
	if !a.Intersects(c) {
		t.Fatal("overlapping boxes should intersect")
	}
}

func TestBounds_IntersectsTouchingIsInclusive(t *testing.T) {
	a := box(0, 0, 0, 1, 1, 1)
	b := box(1, 1, 1, 2, 2, 2)
	if !a.Intersects(b) {
		t.Fatal("boxes sharing exactly a boundary point should intersect")
	}
}

func TestBounds_VolumeAndCenter(t *testing.T) {
	a := box(0, 0, 0, 2, 3, 4)
	if v := a.Volume(); v != 24 {
		t.Fatalf("Volume = %v; want 24", v)
	}
	c := a.Center()
	want := [3]float64{1, 1.5, 2}
	if c != want {
		t.Fatalf("Center = %v; want %v", c, want)
	}
}

func TestBounds_CostIsVolumeIncreaseOfOther(t *testing.T) {
	newLeaf := box(5, 5, 5, 6, 6, 6)
	child := box(0, 0, 0, 1, 1, 1)
	cost := newLeaf.Cost(child)
	want := newLeaf.Union(child).Volume() - child.Volume()
	if cost != want {
		t.Fatalf("Cost = %v; want %v", cost, want)
	}
	// Absorbing a leaf already inside the child costs nothing extra.
	inside := box(0.25, 0.25, 0.25, 0.75, 0.75, 0.75)
	if c := inside.Cost(child); c != 0 {
		t.Fatalf("Cost of an already-enclosed leaf = %v; want 0", c)
	}
}

func TestBounds_EqualReflexive(t *testing.T) {
	a := box(0, 0, 0, 1, 1, 1)
	b := box(0, 0, 0, 1, 1, 1)
	if !a.Equal(b) {
		t.Fatal("identical boxes should be Equal")
	}
	c := box(0, 0, 0, 1, 1, 1.0001)
	if a.Equal(c) {
		t.Fatal("differing boxes should not be Equal")
	}
}
