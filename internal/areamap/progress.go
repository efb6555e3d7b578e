package areamap

import "areamap/internal/scene"

// Count returns how many items are done out of the total.
func Count(items []scene.ProgressItem) (done, total int) {
	for _, it := range items {
		if it.Done() {
			done++
		}
	}
	return done, len(items)
}

// Percent is floor(100*done/total). ok is false when total is zero, in which
// case there is no meaningful rate and callers show "N/A".
func Percent(done, total int) (pct int, ok bool) {
	if total <= 0 {
		return 0, false
	}
	return 100 * done / total, true
}
