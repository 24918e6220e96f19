package domain

import "time"

// TimeWindow is a half-open interval [Start, End) expressed in a single fixed
// timezone. It represents one weekly contest period.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// IsValid reports whether the window spans any time at all.
func (w TimeWindow) IsValid() bool {
	return w.Start.Before(w.End)
}

// Contains reports whether t falls inside the window. The start bound is
// inclusive, the end bound exclusive.
func (w TimeWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}
