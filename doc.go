// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package calmath provides day arithmetic for dates in the proleptic
// Gregorian calendar for years 1 through 9999.
//
// Dates are represented by CalendarDate which can only be created via
// NewCalendarDate and hence always denotes a real date. The result
// returning functions, MonthLength, Between, DaysBetweenDates and Age,
// report invalid input as errors:
//
//	from, err := calmath.NewCalendarDate(2023, 1, 1)
//	...
//	to, err := calmath.NewCalendarDate(2023, 12, 31)
//	...
//	days, err := calmath.Between(from, to) // 364
//
// The functions DaysInMonth, IsValidDate, DaysBetween and AgeInDays accept
// plain integers and never fail; they return 0 or false for any invalid
// input, reversed range or future birth date. Note that this makes an
// error indistinguishable from a legitimate result of zero days.
//
// Today's date is obtained via a Clock. AgeInDays uses SystemClock,
// AgeInDaysOn accepts today's date explicitly and AgeInDaysContext uses
// the Clock stored in its context:
//
//	ctx = calmath.ContextWithClock(ctx, calmath.FixedClock(today))
//	days := calmath.AgeInDaysContext(ctx, 1990, 6, 15)
package calmath
