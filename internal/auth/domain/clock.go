package domain

import "time"

// Clock supplies the current time to every state-changing operation so that
// lock windows and token lifetimes are deterministic under test.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func SystemClock() Clock { return systemClock{} }
