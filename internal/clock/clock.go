package clock

import "time"

// Clock abstracts time so the timer and engine stay deterministic in tests.
type Clock interface {
	Now() time.Time
}

// System is the wall clock.
type System struct{}

func (System) Now() time.Time {
	return time.Now()
}
