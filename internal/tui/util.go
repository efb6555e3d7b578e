package tui

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// wrapIndex keeps i inside [0, n).
func wrapIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}
