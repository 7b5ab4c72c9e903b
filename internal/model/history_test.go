package model

import "testing"

func TestPriceHistory_FIFOEviction(t *testing.T) {
	h := NewPriceHistory(5)
	for i := 0; i < 6; i++ {
		h.Append(float64(i))
	}

	if h.Len() != 5 {
		t.Fatalf("expected len 5 after overflow, got %d", h.Len())
	}
	want := []float64{1, 2, 3, 4, 5}
	got := h.Values()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: expected %v, got %v (oldest must be evicted)", i, want[i], got[i])
		}
	}
}

func TestPriceHistory_ValuesIsACopy(t *testing.T) {
	h := NewPriceHistory(5)
	h.Append(1)
	h.Append(2)

	v := h.Values()
	v[0] = 99
	if h.Values()[0] != 1 {
		t.Error("mutating the returned slice must not affect the history")
	}
}

func TestPriceHistory_LastAndEmpty(t *testing.T) {
	h := NewPriceHistory(3)
	if h.Last() != 0 {
		t.Errorf("expected 0 for empty history, got %v", h.Last())
	}
	h.Append(7.5)
	h.Append(8.5)
	if h.Last() != 8.5 {
		t.Errorf("expected 8.5, got %v", h.Last())
	}
}

func TestPriceHistory_DefaultCapacity(t *testing.T) {
	h := NewPriceHistory(0)
	if h.Cap() != DefaultHistoryCapacity {
		t.Errorf("expected default capacity %d, got %d", DefaultHistoryCapacity, h.Cap())
	}
}
