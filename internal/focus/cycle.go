// Package focus computes the next or previous element of an ordered
// sequence with wraparound. It is used for windows on the active desktop
// and for the desktop index range alike.
package focus

import "github.com/mbroemme/fbctrl/internal/types"

// Target is the result of one cycling step
type Target[T comparable] struct {
	Value T
	Index int
	// Wrapped is set when the step crossed the end of the sequence
	Wrapped bool
}

// CycleIndex calculates the next index when cycling through total items.
// Wraps around at boundaries.
func CycleIndex(current, total int, dir types.Direction) int {
	if total <= 0 {
		return 0
	}

	if dir == types.DirPrev {
		return (current - 1 + total) % total
	}
	return (current + 1) % total
}

// FindIndex finds the index of v in seq.
// Returns -1 if not found.
func FindIndex[T comparable](seq []T, v T) int {
	for i, item := range seq {
		if item == v {
			return i
		}
	}
	return -1
}

// Cycle returns the element after (DirNext) or before (DirPrev) current in
// seq. The second result is false when seq is empty or does not contain
// current; no target is chosen in that case.
func Cycle[T comparable](seq []T, current T, dir types.Direction) (Target[T], bool) {
	if len(seq) == 0 {
		return Target[T]{}, false
	}

	i := FindIndex(seq, current)
	if i < 0 {
		return Target[T]{}, false
	}

	next := CycleIndex(i, len(seq), dir)
	wrapped := (dir == types.DirPrev && next >= i) || (dir != types.DirPrev && next <= i)
	return Target[T]{Value: seq[next], Index: next, Wrapped: wrapped}, true
}

// CycleRange is Cycle over the implicit sequence 0, 1, ..., count-1.
// The second result is false when count is zero or current is outside
// the range.
func CycleRange(current, count uint32, dir types.Direction) (Target[uint32], bool) {
	if count == 0 || current >= count {
		return Target[uint32]{}, false
	}

	next := uint32(CycleIndex(int(current), int(count), dir))
	wrapped := (dir == types.DirPrev && next >= current) || (dir != types.DirPrev && next <= current)
	return Target[uint32]{Value: next, Index: int(next), Wrapped: wrapped}, true
}
