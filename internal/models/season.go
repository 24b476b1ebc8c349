// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package models

import (
	"fmt"
	"strings"
	"time"
)

// Season is a three-month calendar bucket used for seasonal affinity.
// Jan-Mar = 0, Apr-Jun = 1, Jul-Sep = 2, Oct-Dec = 3.
type Season int

const (
	SeasonJanMar Season = iota
	SeasonAprJun
	SeasonJulSep
	SeasonOctDec
)

// SeasonCount is the number of season buckets.
const SeasonCount = 4

// Valid reports whether s is one of the four buckets.
func (s Season) Valid() bool {
	return s >= SeasonJanMar && s <= SeasonOctDec
}

// String returns a short label such as "Apr-Jun".
func (s Season) String() string {
	switch s {
	case SeasonJanMar:
		return "Jan-Mar"
	case SeasonAprJun:
		return "Apr-Jun"
	case SeasonJulSep:
		return "Jul-Sep"
	case SeasonOctDec:
		return "Oct-Dec"
	default:
		return fmt.Sprintf("Season(%d)", int(s))
	}
}

// ParseSeason parses a label produced by Season.String, case-insensitive.
func ParseSeason(label string) (Season, error) {
	l := strings.TrimSpace(label)
	for s := SeasonJanMar; s <= SeasonOctDec; s++ {
		if strings.EqualFold(l, s.String()) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown season %q", label)
}

// SeasonForMonth maps a calendar month to its season bucket.
func SeasonForMonth(m time.Month) (Season, error) {
	if m < time.January || m > time.December {
		return 0, fmt.Errorf("month %d out of range 1-12", int(m))
	}
	return Season((int(m) - 1) / 3), nil
}

// MonthFromName converts an English month name ("March", "march") to its month.
func MonthFromName(name string) (time.Month, error) {
	n := strings.TrimSpace(name)
	for m := time.January; m <= time.December; m++ {
		if strings.EqualFold(n, m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown month %q", name)
}

// AgeOn returns the age in whole years of someone born on dob, as of today.
// One year is subtracted when this year's birthday has not happened yet.
func AgeOn(dob, today time.Time) int {
	age := today.Year() - dob.Year()
	if today.Month() < dob.Month() || (today.Month() == dob.Month() && today.Day() < dob.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}
