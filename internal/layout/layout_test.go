package layout

import "testing"

func TestLabelOnTopForcedWhenLabelTooWide(t *testing.T) {
	no := false
	if !LabelOnTop(7, 8, Gutter, &no, false) {
		t.Fatalf("expected wide label to be stacked despite override")
	}
}

func TestLabelOnTopUsesOverrideThenFallback(t *testing.T) {
	yes, no := true, false
	if !LabelOnTop(6, 8, Gutter, &yes, false) {
		t.Fatalf("expected override true to stack")
	}
	if LabelOnTop(6, 8, Gutter, &no, true) {
		t.Fatalf("expected override false to keep inline")
	}
	if !LabelOnTop(3, 8, Gutter, nil, true) {
		t.Fatalf("expected fallback true to stack")
	}
	if LabelOnTop(3, 8, Gutter, nil, false) {
		t.Fatalf("expected fallback false to keep inline")
	}
}

func TestLabelWidthCountsCells(t *testing.T) {
	if w := LabelWidth("size"); w != 4 {
		t.Fatalf("expected 4, got %d", w)
	}
	if w := LabelWidth("色"); w != 2 {
		t.Fatalf("expected wide rune to take 2 cells, got %d", w)
	}
}

func TestOr(t *testing.T) {
	n := 4
	if Or(&n, 8) != 4 {
		t.Fatalf("expected override")
	}
	if Or[int](nil, 8) != 8 {
		t.Fatalf("expected fallback")
	}
}
