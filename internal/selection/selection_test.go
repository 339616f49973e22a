// ABOUTME: Tests for day-indexed pool rotation and distinct picking.
// ABOUTME: Covers wrap-around, slot offsets and empty pools.
package selection

import "testing"

func TestIndex(t *testing.T) {
	tests := []struct {
		day, offset, n int
		want           int
	}{
		{0, 0, 7, 0},
		{6, 0, 7, 6},
		{7, 0, 7, 0},
		{74, 0, 7, 4},
		{0, 5, 7, 5},
		{4, 5, 7, 2},
		{0, 11, 6, 5},
		{-1, 0, 7, 6},
		{3, 2, 0, 0},
	}

	for _, tt := range tests {
		if got := Index(tt.day, tt.offset, tt.n); got != tt.want {
			t.Errorf("Index(%d, %d, %d) = %d, want %d", tt.day, tt.offset, tt.n, got, tt.want)
		}
	}
}

func TestSlotOffsets(t *testing.T) {
	want := map[Slot]int{
		SlotBreakfast:  0,
		SlotMidMorning: 3,
		SlotLunch:      5,
		SlotEvening:    8,
		SlotDinner:     11,
	}
	for slot, offset := range want {
		if got := slot.Offset(); got != offset {
			t.Errorf("%s.Offset() = %d, want %d", slot, got, offset)
		}
	}
	if Slot(42).Offset() != 0 || Slot(42).String() != "meal" {
		t.Error("out-of-range slot should have zero offset and a generic name")
	}
}

func TestPick(t *testing.T) {
	pool := []string{"a", "b", "c", "d", "e", "f", "g"}

	if got := Pick(pool, 0, SlotBreakfast); got != "a" {
		t.Errorf("Pick day 0 breakfast = %q, want a", got)
	}
	if got := Pick(pool, 0, SlotLunch); got != "f" {
		t.Errorf("Pick day 0 lunch = %q, want f", got)
	}
	if got := Pick(pool, 7, SlotBreakfast); got != "a" {
		t.Errorf("Pick day 7 breakfast = %q, want wrap to a", got)
	}
	if got := Pick(nil, 3, SlotDinner); got != "" {
		t.Errorf("Pick on empty pool = %q, want empty", got)
	}
}

func TestPickDistinct(t *testing.T) {
	pool := []string{"a", "b", "c"}

	if got := PickDistinct(pool, 0, SlotBreakfast, "a"); got != "b" {
		t.Errorf("PickDistinct skipping a = %q, want b", got)
	}
	if got := PickDistinct(pool, 2, SlotBreakfast, "c", "a"); got != "b" {
		t.Errorf("PickDistinct with wrap = %q, want b", got)
	}
	if got := PickDistinct(pool, 0, SlotBreakfast, "a", "b", "c"); got != "a" {
		t.Errorf("PickDistinct with everything taken = %q, want a", got)
	}
	if got := PickDistinct(nil, 0, SlotBreakfast); got != "" {
		t.Errorf("PickDistinct on empty pool = %q, want empty", got)
	}
}

func TestCycle(t *testing.T) {
	tests := []struct{ day, want int }{
		{0, 0}, {14, 0}, {15, 1}, {44, 2}, {74, 4}, {-3, 0},
	}
	for _, tt := range tests {
		if got := Cycle(tt.day); got != tt.want {
			t.Errorf("Cycle(%d) = %d, want %d", tt.day, got, tt.want)
		}
	}
}

func TestIsSnack(t *testing.T) {
	for _, s := range AllSlots {
		want := s == SlotMidMorning || s == SlotEvening
		if s.IsSnack() != want {
			t.Errorf("%s.IsSnack() = %v, want %v", s, s.IsSnack(), want)
		}
	}
}
