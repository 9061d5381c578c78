package preset

import "time"

// TimeProvider supplies timestamps for created presets and added entries
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider reads the system clock in UTC
type RealTimeProvider struct{}

func (r *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
