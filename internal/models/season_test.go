// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package models

import (
	"testing"
	"time"
)

func TestSeasonForMonth(t *testing.T) {
	t.Parallel()

	want := map[time.Month]Season{
		time.January: SeasonJanMar, time.March: SeasonJanMar,
		time.April: SeasonAprJun, time.June: SeasonAprJun,
		time.July: SeasonJulSep, time.September: SeasonJulSep,
		time.October: SeasonOctDec, time.December: SeasonOctDec,
	}
	for m, s := range want {
		got, err := SeasonForMonth(m)
		if err != nil {
			t.Fatalf("SeasonForMonth(%v) error = %v", m, err)
		}
		if got != s {
			t.Errorf("SeasonForMonth(%v) = %v, want %v", m, got, s)
		}
	}

	for _, m := range []time.Month{0, 13} {
		if _, err := SeasonForMonth(m); err == nil {
			t.Errorf("SeasonForMonth(%d) should fail", m)
		}
	}
}

func TestMonthFromName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    time.Month
		wantErr bool
	}{
		{"January", time.January, false},
		{"march", time.March, false},
		{" DECEMBER ", time.December, false},
		{"Sept", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := MonthFromName(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("MonthFromName(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("MonthFromName(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAgeOn(t *testing.T) {
	t.Parallel()

	dob := time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name  string
		today time.Time
		want  int
	}{
		{"day before birthday", time.Date(2025, time.June, 14, 0, 0, 0, 0, time.UTC), 34},
		{"on birthday", time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC), 35},
		{"later in year", time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC), 35},
		{"earlier month", time.Date(2025, time.January, 30, 0, 0, 0, 0, time.UTC), 34},
		{"born in the future", time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC), 0},
	}
	for _, tt := range tests {
		if got := AgeOn(dob, tt.today); got != tt.want {
			t.Errorf("%s: AgeOn() = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestQuestionnaire_Profile(t *testing.T) {
	t.Parallel()

	q := &Questionnaire{
		Month:       time.August,
		DateOfBirth: time.Date(2000, time.March, 1, 0, 0, 0, 0, time.UTC),
		Interests:   Interests{Food: true},
	}
	p, err := q.Profile(time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	if p.Age != 25 || p.Season != SeasonJulSep || !p.Interests.Food {
		t.Errorf("Profile() = %+v", p)
	}

	q.Month = 0
	if _, err := q.Profile(time.Now()); err == nil {
		t.Error("Profile() with invalid month should fail")
	}
}

func TestInterests_Flag(t *testing.T) {
	t.Parallel()

	i := Interests{LocalLife: true}
	if v, err := i.Flag(InterestLocalLife); err != nil || !v {
		t.Errorf("Flag(local_life) = %v, %v", v, err)
	}
	if v, err := i.Flag(InterestNature); err != nil || v {
		t.Errorf("Flag(nature) = %v, %v", v, err)
	}
	if _, err := i.Flag("shopping"); err == nil {
		t.Error("Flag(shopping) should fail")
	}
}

func TestDestination_Helpers(t *testing.T) {
	t.Parallel()

	d := &Destination{
		Seasonal:   [SeasonCount]float64{0.1, 0.2, 0.3, 0.4},
		ThingsToDo: "Hiking / Tea tasting//  Train ride ",
	}
	if d.SeasonalAffinity(SeasonOctDec) != 0.4 || d.SeasonalAffinity(Season(-1)) != 0 {
		t.Error("SeasonalAffinity() mismatch")
	}
	acts := d.Activities()
	if len(acts) != 3 || acts[0] != "Hiking" || acts[2] != "Train ride" {
		t.Errorf("Activities() = %q", acts)
	}
	if got := (&Destination{}).Activities(); len(got) != 0 {
		t.Errorf("empty Activities() = %q", got)
	}
	if s := (Coordinates{Latitude: 6.9271, Longitude: 79.8612}).String(); s != "6.9271,79.8612" {
		t.Errorf("Coordinates.String() = %q", s)
	}
}

func TestParseSeason(t *testing.T) {
	t.Parallel()

	for s := SeasonJanMar; s <= SeasonOctDec; s++ {
		got, err := ParseSeason(s.String())
		if err != nil || got != s {
			t.Errorf("ParseSeason(%q) = %v, %v", s.String(), got, err)
		}
	}
	if got, err := ParseSeason(" jul-sep "); err != nil || got != SeasonJulSep {
		t.Errorf("ParseSeason(lowercase) = %v, %v", got, err)
	}
	if _, err := ParseSeason("Summer"); err == nil {
		t.Error("ParseSeason(Summer) should fail")
	}
}
