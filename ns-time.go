package nstimes

import "time"

// Time is a planned moment together with the moment it actually happens.
type Time struct {
	Planned time.Time `json:"planned"`
	Actual  time.Time `json:"actual"`
}

// NewTime builds a Time. A zero actual means the source had no realtime
// information, in which case the departure is taken to be on time.
func NewTime(planned, actual time.Time) Time {
	if actual.IsZero() {
		actual = planned
	}
	return Time{
		Planned: planned,
		Actual:  actual,
	}
}

// DelayMinutes is the delay in whole minutes, truncated toward zero.
// Negative when the source reports a moment earlier than planned.
func (t Time) DelayMinutes() int {
	return int(t.Actual.Sub(t.Planned) / time.Minute)
}

func (t Time) Delayed() bool {
	return t.DelayMinutes() != 0
}
