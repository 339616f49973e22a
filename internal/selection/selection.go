// ABOUTME: Deterministic day-indexed rotation through content pools.
// ABOUTME: Per-slot offsets keep meal slots from cycling in lockstep.
package selection

// CycleLength is the number of days after which pool rotations are considered
// to repeat; annotation text varies with each repetition.
const CycleLength = 15

// Slot identifies a meal slot within a day.
type Slot int

const (
	SlotBreakfast Slot = iota
	SlotMidMorning
	SlotLunch
	SlotEvening
	SlotDinner
)

// AllSlots returns the meal slots in serving order.
var AllSlots = []Slot{SlotBreakfast, SlotMidMorning, SlotLunch, SlotEvening, SlotDinner}

var slotOffsets = [...]int{
	SlotBreakfast:  0,
	SlotMidMorning: 3,
	SlotLunch:      5,
	SlotEvening:    8,
	SlotDinner:     11,
}

var slotNames = [...]string{
	SlotBreakfast:  "breakfast",
	SlotMidMorning: "mid-morning snack",
	SlotLunch:      "lunch",
	SlotEvening:    "evening snack",
	SlotDinner:     "dinner",
}

// Offset returns the rotation offset for the slot.
func (s Slot) Offset() int {
	if s < 0 || int(s) >= len(slotOffsets) {
		return 0
	}
	return slotOffsets[s]
}

func (s Slot) String() string {
	if s < 0 || int(s) >= len(slotNames) {
		return "meal"
	}
	return slotNames[s]
}

// IsSnack reports whether the slot is one of the two snack slots.
func (s Slot) IsSnack() bool {
	return s == SlotMidMorning || s == SlotEvening
}

// Index returns (dayIndex + offset) mod n, always in [0, n). It returns 0 when
// n is not positive.
func Index(dayIndex, offset, n int) int {
	if n <= 0 {
		return 0
	}
	i := (dayIndex + offset) % n
	if i < 0 {
		i += n
	}
	return i
}

// Pick returns the pool entry for a 0-based day index and slot, or "" for an
// empty pool.
func Pick(pool []string, dayIndex int, slot Slot) string {
	if len(pool) == 0 {
		return ""
	}
	return pool[Index(dayIndex, slot.Offset(), len(pool))]
}

// PickDistinct is Pick, but advances through the pool until the candidate
// differs from every string in taken. If the whole pool is taken the normal
// Pick result is returned.
func PickDistinct(pool []string, dayIndex int, slot Slot, taken ...string) string {
	if len(pool) == 0 {
		return ""
	}
	start := Index(dayIndex, slot.Offset(), len(pool))
	for step := 0; step < len(pool); step++ {
		candidate := pool[(start+step)%len(pool)]
		if !contains(taken, candidate) {
			return candidate
		}
	}
	return pool[start]
}

// Cycle returns which repetition of the CycleLength-day rotation a 0-based
// day index falls in.
func Cycle(dayIndex int) int {
	if dayIndex < 0 {
		return 0
	}
	return dayIndex / CycleLength
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
