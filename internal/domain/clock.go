package domain

import "time"

// Clock supplies the current time. Availability and expiration checks read
// time through it so they stay deterministic under test.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
