package geom

import "testing"

func TestIntersectDisjointIsSortedEmpty(t *testing.T) {
	a := Rect{0, 0, 4, 4}
	b := Rect{10, 10, 14, 14}

	got := a.Intersect(b)
	if !got.Sorted() {
		t.Fatalf("Intersect of disjoint rects not sorted: %+v", got)
	}
	if !got.Empty() {
		t.Fatalf("Intersect of disjoint rects not empty: %+v", got)
	}
}

func TestIntersectContainment(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
	}{
		{"overlapping", Rect{0, 0, 10, 10}, Rect{5, 5, 15, 15}},
		{"nested", Rect{0, 0, 10, 10}, Rect{2, 2, 4, 4}},
		{"identical", Rect{3, 3, 8, 8}, Rect{3, 3, 8, 8}},
		{"touching-edge", Rect{0, 0, 5, 5}, Rect{5, 0, 10, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i := tt.a.Intersect(tt.b)
			if !i.Sorted() {
				t.Fatalf("intersection not sorted: %+v", i)
			}
			// a must contain the intersection
			if i.Left < tt.a.Left || i.Top < tt.a.Top || i.Right > tt.a.Right || i.Bottom > tt.a.Bottom {
				t.Fatalf("a does not contain intersection: a=%+v i=%+v", tt.a, i)
			}
		})
	}
}

func TestMergeWithEmptyReturnsOther(t *testing.T) {
	a := Rect{1, 2, 3, 4}
	empty := Rect{}

	if got := a.Merge(empty); got != a {
		t.Errorf("Merge(a, empty) = %+v, want %+v", got, a)
	}
	if got := empty.Merge(a); got != a {
		t.Errorf("Merge(empty, a) = %+v, want %+v", got, a)
	}
}

func TestMergeBoundingBox(t *testing.T) {
	a := Rect{0, 0, 5, 5}
	b := Rect{3, -2, 8, 3}
	want := Rect{0, -2, 8, 5}
	if got := a.Merge(b); got != want {
		t.Errorf("Merge = %+v, want %+v", got, want)
	}
}

func TestMergePointOnEmptyYieldsSingleCell(t *testing.T) {
	var r Rect
	got := r.MergePoint(5, 7)
	want := Rect{5, 7, 6, 8}
	if got != want {
		t.Errorf("MergePoint on empty = %+v, want %+v", got, want)
	}
}

func TestMergePointExpandsUnion(t *testing.T) {
	r := Rect{0, 0, 2, 2}
	got := r.MergePoint(5, 5)
	want := Rect{0, 0, 6, 6}
	if got != want {
		t.Errorf("MergePoint = %+v, want %+v", got, want)
	}
}

func TestGrowExpandsAllSides(t *testing.T) {
	r := Rect{5, 5, 10, 10}
	got := r.Grow(2)
	want := Rect{3, 3, 12, 12}
	if got != want {
		t.Errorf("Grow(2) = %+v, want %+v", got, want)
	}
}

func TestGrowEmptyStaysEmpty(t *testing.T) {
	r := Rect{5, 5, 5, 9}
	got := r.Grow(3)
	if !got.Empty() {
		t.Errorf("Grow of empty rect should stay empty, got %+v", got)
	}
}

func TestGrowXYAsymmetric(t *testing.T) {
	r := Rect{0, 0, 10, 10}
	got := r.GrowXY(1, 2)
	want := Rect{-1, -2, 11, 12}
	if got != want {
		t.Errorf("GrowXY(1,2) = %+v, want %+v", got, want)
	}
}

func TestTranslate(t *testing.T) {
	r := Rect{0, 0, 4, 4}
	got := r.Translate(3, -2)
	want := Rect{3, -2, 7, 2}
	if got != want {
		t.Errorf("Translate = %+v, want %+v", got, want)
	}
}
