// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calmath

import "cloudeng.io/errors"

var (
	// ErrInvalidDate is returned for operations on the zero CalendarDate
	// and wrapped by all of the more specific construction errors below.
	ErrInvalidDate = errors.New("invalid calendar date")

	// ErrYearOutOfRange is returned when a year is outside of MinYear..MaxYear.
	ErrYearOutOfRange = errors.New("year out of range")

	// ErrInvalidMonth is returned when a month is outside of 1..12.
	ErrInvalidMonth = errors.New("invalid month")

	// ErrInvalidDay is returned when a day is outside of the days
	// in the specified month.
	ErrInvalidDay = errors.New("invalid day")

	// ErrReversedRange is returned when the start of a range is
	// after its end.
	ErrReversedRange = errors.New("start date is after end date")

	// ErrFutureBirthDate is returned when a birth date is after today.
	ErrFutureBirthDate = errors.New("birth date is in the future")
)

// dateError records the triple that failed construction and
// matches both ErrInvalidDate and the specific reason.
type dateError struct {
	year, month, day int
	reason           error
}

func (e *dateError) Error() string {
	return "invalid calendar date " + formatTriple(e.year, e.month, e.day) + ": " + e.reason.Error()
}

func (e *dateError) Unwrap() []error {
	return []error{ErrInvalidDate, e.reason}
}
