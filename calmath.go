// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calmath

import (
	"context"
	"fmt"
	"log/slog"

	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
)

// DayCount is a non-negative number of whole elapsed days.
type DayCount int

// MonthLength returns the number of days in the specified month. It is
// computed as the distance from the first day of the month to the first
// day of the following month and hence an error is returned for December
// of MaxYear as well as for any month or year that is out of range.
func MonthLength(year, month int) (int, error) {
	first, err := NewCalendarDate(year, month, 1)
	if err != nil {
		return 0, err
	}
	nextYear, nextMonth := year, month+1
	if month == 12 {
		nextYear, nextMonth = year+1, 1
	}
	next, err := NewCalendarDate(nextYear, nextMonth, 1)
	if err != nil {
		return 0, fmt.Errorf("end of month %v: %w", Month(month), err)
	}
	return next.Ordinal() - first.Ordinal(), nil
}

// DaysInMonth returns the number of days in the specified month, or 0 if
// MonthLength returns an error.
func DaysInMonth(year, month int) int {
	n, err := MonthLength(year, month)
	if err != nil {
		return 0
	}
	return max(n, 0)
}

// IsValidDate returns true if year is in the range 1..MaxYear, month is
// in 1..12 and day is in 1..DaysInMonth(year, month).
func IsValidDate(year, month, day int) bool {
	return year > 0 && year <= MaxYear &&
		month >= 1 && month <= 12 &&
		day >= 1 && day <= DaysInMonth(year, month)
}

// Between returns the number of days from 'from' to 'to'. It returns
// ErrReversedRange if from is after to.
func Between(from, to CalendarDate) (DayCount, error) {
	if from.IsZero() || to.IsZero() {
		return 0, ErrInvalidDate
	}
	if from.After(to) {
		return 0, fmt.Errorf("%v to %v: %w", from, to, ErrReversedRange)
	}
	return DayCount(to.Ordinal() - from.Ordinal()), nil
}

// DaysBetweenDates is like Between except that it accepts year, month,
// day triples. If both triples are invalid, both errors are returned.
func DaysBetweenDates(year1, month1, day1, year2, month2, day2 int) (DayCount, error) {
	from, ferr := NewCalendarDate(year1, month1, day1)
	to, terr := NewCalendarDate(year2, month2, day2)
	errs := &errors.M{}
	errs.Append(ferr, terr)
	if err := errs.Err(); err != nil {
		return 0, err
	}
	return Between(from, to)
}

// DaysBetween returns the number of days between two dates, or 0 if
// either date is invalid or the first date is after the second.
func DaysBetween(year1, month1, day1, year2, month2, day2 int) int {
	n, err := DaysBetweenDates(year1, month1, day1, year2, month2, day2)
	if err != nil {
		return 0
	}
	return int(n)
}

// Age returns the number of days from birth to today. It returns
// ErrFutureBirthDate if birth is after today.
func Age(birth, today CalendarDate) (DayCount, error) {
	if birth.IsZero() || today.IsZero() {
		return 0, ErrInvalidDate
	}
	if birth.After(today) {
		return 0, fmt.Errorf("born %v, today is %v: %w", birth, today, ErrFutureBirthDate)
	}
	return Between(birth, today)
}

func ageInDays(today CalendarDate, year, month, day int) (DayCount, error) {
	birth, err := NewCalendarDate(year, month, day)
	if err != nil {
		return 0, err
	}
	if !IsValidDate(year, month, day) {
		// Only the last month of MaxYear gets here.
		return 0, fmt.Errorf("birth date %v: %w", birth, ErrInvalidDate)
	}
	return Age(birth, today)
}

// AgeInDays returns the number of days from the specified birth date
// to today's date as read from the system clock. It returns 0 if the
// birth date is invalid or in the future.
func AgeInDays(birthYear, birthMonth, birthDay int) int {
	return AgeInDaysOn(SystemClock.Today(), birthYear, birthMonth, birthDay)
}

// AgeInDaysOn is like AgeInDays except that today is supplied
// by the caller.
func AgeInDaysOn(today CalendarDate, birthYear, birthMonth, birthDay int) int {
	n, err := ageInDays(today, birthYear, birthMonth, birthDay)
	if err != nil {
		return 0
	}
	return int(n)
}

// AgeInDaysContext is like AgeInDays except that today is obtained from
// the Clock stored in ctx (see ContextWithClock). Rejected birth dates are
// logged at debug level to the logger stored in ctx, if any.
func AgeInDaysContext(ctx context.Context, birthYear, birthMonth, birthDay int) int {
	today := ClockFromContext(ctx).Today()
	n, err := ageInDays(today, birthYear, birthMonth, birthDay)
	if err != nil {
		ctxlog.Logger(ctx).Log(ctx, slog.LevelDebug, "age in days: rejected birth date",
			"year", birthYear,
			"month", birthMonth,
			"day", birthDay,
			"today", today.String(),
			"err", err)
		return 0
	}
	return int(n)
}
