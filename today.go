// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calmath

import (
	"context"
	"time"
)

// Clock provides the current calendar date.
type Clock interface {
	Today() CalendarDate
}

type systemClock struct{}

// Today implements Clock.
func (systemClock) Today() CalendarDate {
	return CalendarDateFromTime(time.Now())
}

// SystemClock returns today's date in the local location as read
// from the system clock.
var SystemClock Clock = systemClock{}

// FixedClock is a Clock that always returns the same date, create it
// by converting a CalendarDate, eg. FixedClock(cd).
type FixedClock CalendarDate

// Today implements Clock.
func (fc FixedClock) Today() CalendarDate {
	return CalendarDate(fc)
}

type clockKey struct{}

// ContextWithClock returns a new context with the given Clock stored in it.
func ContextWithClock(ctx context.Context, clock Clock) context.Context {
	return context.WithValue(ctx, clockKey{}, clock)
}

// ClockFromContext returns the Clock stored in the given context, or
// SystemClock if there is none.
func ClockFromContext(ctx context.Context) Clock {
	clock, ok := ctx.Value(clockKey{}).(Clock)
	if !ok || clock == nil {
		return SystemClock
	}
	return clock
}
