package timeprovider

import "time"

// TimeProvider abstracts reading the current time so that timestamps can be controlled in tests.
type TimeProvider interface {
	Now() time.Time
}

// CurrentTimeProvider implements 'TimeProvider' using the system clock.
type CurrentTimeProvider struct{}

var _ TimeProvider = CurrentTimeProvider{}

func (tp CurrentTimeProvider) Now() time.Time {
	return time.Now()
}
