package mem

// GrowCap returns the next capacity in the doubling growth schedule.
// Growing by a constant factor keeps amortized append cost O(1) and bounds
// worst-case waste to about 2x the live size.
func GrowCap(cap int) int {
	if cap < 1 {
		return 1
	}
	return cap * 2
}

// ShrinkCap returns the next capacity in the halving shrink schedule,
// never dropping below one element.
func ShrinkCap(cap int) int {
	half := cap / 2
	if half < 1 {
		return 1
	}
	return half
}

// ShouldShrink reports whether a container holding length elements in the
// given capacity is due for a shrink (live region at or below half capacity).
func ShouldShrink(length, cap int) bool {
	return cap > 1 && length <= cap/2
}
