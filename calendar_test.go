// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calmath_test

import (
	"errors"
	"testing"

	"cloudeng.io/calmath"
	"github.com/google/go-cmp/cmp"
)

func TestLeapYears(t *testing.T) {
	for _, tc := range []struct {
		year int
		leap bool
	}{
		{1, false},
		{4, true},
		{100, false},
		{400, true},
		{1900, false},
		{2000, true},
		{2023, false},
		{2024, true},
		{2100, false},
		{9996, true},
	} {
		if got, want := calmath.IsLeap(tc.year), tc.leap; got != want {
			t.Errorf("%v: got %v, want %v", tc.year, got, want)
		}
		feb := 28
		if tc.leap {
			feb = 29
		}
		if got, want := calmath.DaysInFeb(tc.year), feb; got != want {
			t.Errorf("%v: got %v, want %v", tc.year, got, want)
		}
	}
}

func monthLengths(year int) []int {
	r := make([]int, 12)
	for m := 1; m <= 12; m++ {
		r[m-1] = calmath.DaysInMonth(year, m)
	}
	return r
}

func TestDaysInMonth(t *testing.T) {
	regular := []int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	leap := []int{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	for _, year := range []int{1, 3, 100, 1900, 2023, 2100, 9998} {
		if diff := cmp.Diff(regular, monthLengths(year)); diff != "" {
			t.Errorf("%v: mismatch (-want +got):\n%s", year, diff)
		}
	}
	for _, year := range []int{4, 400, 2000, 2024, 9996} {
		if diff := cmp.Diff(leap, monthLengths(year)); diff != "" {
			t.Errorf("%v: mismatch (-want +got):\n%s", year, diff)
		}
	}

	for year := calmath.MinYear; year < calmath.MaxYear; year++ {
		want := 28
		if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
			want = 29
		}
		if got := calmath.DaysInMonth(year, 2); got != want {
			t.Errorf("%v: got %v, want %v", year, got, want)
		}
	}

	for _, tc := range []struct {
		year, month, days int
	}{
		{2024, 2, 29},
		{2023, 2, 28},
		{2023, 4, 30},
		{2023, 12, 31},
		{2023, 0, 0},
		{2023, 13, 0},
		{2023, -1, 0},
		{0, 1, 0},
		{-5, 2, 0},
		{calmath.MaxYear + 1, 1, 0},
		{calmath.MaxYear, 11, 30},
		// The first day of the following month cannot be represented.
		{calmath.MaxYear, 12, 0},
	} {
		if got, want := calmath.DaysInMonth(tc.year, tc.month), tc.days; got != want {
			t.Errorf("%v/%v: got %v, want %v", tc.year, tc.month, got, want)
		}
	}
}

func TestMonthTables(t *testing.T) {
	// Day of year for the first of each month must agree with the
	// lengths of the preceding months.
	for _, year := range []int{2023, 2024} {
		first := 1
		for m := 1; m <= 12; m++ {
			cd := calmath.MustCalendarDate(year, m, 1)
			if got, want := cd.DayOfYear(), first; got != want {
				t.Errorf("%v: got %v, want %v", cd, got, want)
			}
			last := calmath.MustCalendarDate(year, m, calmath.DaysInMonth(year, m))
			if got, want := last.DayOfYear(), first+calmath.DaysInMonth(year, m)-1; got != want {
				t.Errorf("%v: got %v, want %v", last, got, want)
			}
			first += calmath.DaysInMonth(year, m)
		}
	}
}

func TestMonthLength(t *testing.T) {
	n, err := calmath.MonthLength(2024, 2)
	if err != nil || n != 29 {
		t.Errorf("got %v, %v, want 29, nil", n, err)
	}
	for _, tc := range []struct {
		year, month int
		err         error
	}{
		{2023, 13, calmath.ErrInvalidMonth},
		{2023, 0, calmath.ErrInvalidMonth},
		{0, 1, calmath.ErrYearOutOfRange},
		{calmath.MaxYear, 12, calmath.ErrYearOutOfRange},
	} {
		_, err := calmath.MonthLength(tc.year, tc.month)
		if !errors.Is(err, tc.err) {
			t.Errorf("%v/%v: got %v, want %v", tc.year, tc.month, err, tc.err)
		}
	}
}

func TestMonthString(t *testing.T) {
	for _, tc := range []struct {
		month calmath.Month
		want  string
	}{
		{1, "January"},
		{12, "December"},
		{0, "%!Month(0)"},
		{13, "%!Month(13)"},
	} {
		if got := tc.month.String(); got != tc.want {
			t.Errorf("got %v, want %v", got, tc.want)
		}
	}
}
