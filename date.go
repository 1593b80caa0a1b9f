// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calmath

import (
	"fmt"
	"time"
)

// CalendarDate represents a valid date in the proleptic Gregorian calendar.
// CalendarDates may be compared using == and ordered using Compare, Before
// and After. The zero value is not a valid date; NewCalendarDate is the only
// way to create a non-zero CalendarDate.
type CalendarDate struct {
	packed uint32 // year<<16 | month<<8 | day, ordered chronologically
}

func newCalendarDate(year int, month Month, day int) CalendarDate {
	return CalendarDate{uint32(year)<<16 | uint32(month)<<8 | uint32(day)}
}

func formatTriple(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// NewCalendarDate returns the CalendarDate for the specified year, month
// and day or an error if they do not denote a real date with a year
// in the range MinYear..MaxYear.
func NewCalendarDate(year, month, day int) (CalendarDate, error) {
	if year < MinYear || year > MaxYear {
		return CalendarDate{}, &dateError{year, month, day, ErrYearOutOfRange}
	}
	if month < 1 || month > 12 {
		return CalendarDate{}, &dateError{year, month, day, ErrInvalidMonth}
	}
	if day < 1 || day > tableFor(year).lengths[month-1] {
		return CalendarDate{}, &dateError{year, month, day, ErrInvalidDay}
	}
	return newCalendarDate(year, Month(month), day), nil
}

// MustCalendarDate is like NewCalendarDate but panics on error.
func MustCalendarDate(year, month, day int) CalendarDate {
	cd, err := NewCalendarDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return cd
}

// CalendarDateFromTime returns the CalendarDate for the date of t in
// t's location. The zero CalendarDate is returned if t's year is
// outside of MinYear..MaxYear.
func CalendarDateFromTime(t time.Time) CalendarDate {
	y, m, d := t.Date()
	cd, err := NewCalendarDate(y, int(m), d)
	if err != nil {
		return CalendarDate{}
	}
	return cd
}

// CalendarDateFromOrdinal returns the CalendarDate with the given
// ordinal day number, where 0001-01-01 is day 1.
func CalendarDateFromOrdinal(n int) (CalendarDate, error) {
	if n < 1 || n > maxOrdinal {
		return CalendarDate{}, fmt.Errorf("ordinal %d: %w", n, ErrYearOutOfRange)
	}
	year, day := yearAndDayFromOrdinal(n)
	cumulative := tableFor(year).before
	month := 12
	for month > 1 && cumulative[month-1] > day {
		month--
	}
	return newCalendarDate(year, Month(month), day-cumulative[month-1]+1), nil
}

var maxOrdinal = daysBeforeYear(MaxYear + 1)

// Year returns the year of the date.
func (cd CalendarDate) Year() int {
	return int(cd.packed >> 16)
}

// Month returns the month of the date.
func (cd CalendarDate) Month() Month {
	return Month(cd.packed >> 8 & 0xff)
}

// Day returns the day of the month.
func (cd CalendarDate) Day() int {
	return int(cd.packed & 0xff)
}

// IsZero returns true for the zero value, which is not a valid date.
func (cd CalendarDate) IsZero() bool {
	return cd.packed == 0
}

func (cd CalendarDate) String() string {
	return formatTriple(cd.Year(), int(cd.Month()), cd.Day())
}

// DayOfYear returns the day of the year as 1-365 for non-leap years
// and 1-366 for leap years.
func (cd CalendarDate) DayOfYear() int {
	if cd.IsZero() {
		return 0
	}
	return tableFor(cd.Year()).before[cd.Month()-1] + cd.Day()
}

// Ordinal returns the ordinal day number of the date where 0001-01-01
// is day 1 and consecutive days differ by 1. The zero CalendarDate
// has an ordinal of 0.
func (cd CalendarDate) Ordinal() int {
	if cd.IsZero() {
		return 0
	}
	return daysBeforeYear(cd.Year()) + cd.DayOfYear()
}

// Compare returns -1, 0 or +1 depending on whether cd is before,
// the same as, or after o.
func (cd CalendarDate) Compare(o CalendarDate) int {
	switch {
	case cd.packed < o.packed:
		return -1
	case cd.packed > o.packed:
		return 1
	}
	return 0
}

// Before returns true if cd is before o.
func (cd CalendarDate) Before(o CalendarDate) bool {
	return cd.packed < o.packed
}

// After returns true if cd is after o.
func (cd CalendarDate) After(o CalendarDate) bool {
	return cd.packed > o.packed
}

// Tomorrow returns the date of the next day. 12/31 wraps to 1/1 of the
// following year. An error is returned for the zero value and for the
// last day of MaxYear.
func (cd CalendarDate) Tomorrow() (CalendarDate, error) {
	if cd.IsZero() {
		return CalendarDate{}, ErrInvalidDate
	}
	year, month, day := cd.Year(), cd.Month(), cd.Day()
	switch {
	case month == 12 && day == 31:
		if year == MaxYear {
			return CalendarDate{}, fmt.Errorf("day after %v: %w", cd, ErrYearOutOfRange)
		}
		return newCalendarDate(year+1, 1, 1), nil
	case day >= tableFor(year).lengths[month-1]:
		return newCalendarDate(year, month+1, 1), nil
	}
	return newCalendarDate(year, month, day+1), nil
}

// Yesterday returns the date of the previous day. 1/1 wraps to 12/31 of
// the preceding year. An error is returned for the zero value and for
// the first day of MinYear.
func (cd CalendarDate) Yesterday() (CalendarDate, error) {
	if cd.IsZero() {
		return CalendarDate{}, ErrInvalidDate
	}
	year, month, day := cd.Year(), cd.Month(), cd.Day()
	switch {
	case month == 1 && day == 1:
		if year == MinYear {
			return CalendarDate{}, fmt.Errorf("day before %v: %w", cd, ErrYearOutOfRange)
		}
		return newCalendarDate(year-1, 12, 31), nil
	case day <= 1:
		return newCalendarDate(year, month-1, tableFor(year).lengths[month-2]), nil
	}
	return newCalendarDate(year, month, day-1), nil
}
