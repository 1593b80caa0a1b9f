// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calmath

import "time"

const (
	// MinYear is the earliest year that can be represented by a CalendarDate.
	MinYear = 1
	// MaxYear is the latest year that can be represented by a CalendarDate.
	MaxYear = 9999
)

// Month as an int, January is 1.
type Month time.Month

func (m Month) String() string {
	return time.Month(m).String()
}

// monthTable holds the length of each month and the number of days in
// the year that precede its first day, indexed by month-1.
type monthTable struct {
	lengths [12]int
	before  [12]int
}

var (
	commonYear = monthTable{
		lengths: [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31},
		before:  [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334},
	}
	leapYear = monthTable{
		lengths: [12]int{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31},
		before:  [12]int{0, 31, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335},
	}
)

func tableFor(year int) *monthTable {
	if IsLeap(year) {
		return &leapYear
	}
	return &commonYear
}

// IsLeap returns true if year has a February 29th in the proleptic
// Gregorian calendar: every fourth year except centuries not divisible
// by 400.
func IsLeap(year int) bool {
	if year%100 == 0 {
		return year%400 == 0
	}
	return year%4 == 0
}

// DaysInFeb returns the number of days in February for the given year.
func DaysInFeb(year int) int {
	return tableFor(year).lengths[1]
}

// daysBeforeYear returns the number of days in all of the years
// preceding year, starting at year 1.
func daysBeforeYear(year int) int {
	y := year - 1
	return y*365 + y/4 - y/100 + y/400
}

const (
	daysIn400Years = 146097
	daysIn100Years = 36524
	daysIn4Years   = 1461
)

// yearAndDayFromOrdinal splits an ordinal day number (1 is 0001-01-01)
// into a year and a zero based day within that year.
func yearAndDayFromOrdinal(n int) (year, day int) {
	n--
	n400, n := n/daysIn400Years, n%daysIn400Years
	n100, n := n/daysIn100Years, n%daysIn100Years
	n4, n := n/daysIn4Years, n%daysIn4Years
	n1, n := n/365, n%365
	year = n400*400 + n100*100 + n4*4 + n1 + 1
	if n1 == 4 || n100 == 4 {
		// Dec 31 of a leap year at the end of a 4 or 400 year cycle.
		return year - 1, 365
	}
	return year, n
}
