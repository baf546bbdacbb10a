package engine

import "time"

// Clock supplies the engine's notion of "now". It is injected rather than
// read from a global so time-decay scoring stays deterministic under test.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func SystemClock() Clock {
	return systemClock{}
}
