package domain

import "time"

// IntervalsOverlap reports whether the half-open intervals [aFrom, aTo) and [bFrom, bTo) intersect.
// Touching endpoints do not overlap: [10:00, 12:00) and [12:00, 14:00) are disjoint.
func IntervalsOverlap(aFrom, aTo, bFrom, bTo time.Time) bool {
	return aFrom.Before(bTo) && bFrom.Before(aTo)
}
