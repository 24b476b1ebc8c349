// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package models

import (
	"fmt"
	"time"
)

// Interest flag names as used by the questionnaire and the classifier schema.
const (
	InterestNature       = "nature"
	InterestAdventure    = "adventure"
	InterestLuxury       = "luxury"
	InterestCulture      = "culture"
	InterestRelaxation   = "relaxation"
	InterestWellness     = "wellness"
	InterestLocalLife    = "local_life"
	InterestWildlife     = "wildlife"
	InterestFood         = "food"
	InterestSpirituality = "spirituality"
	InterestEcoTourism   = "eco_tourism"
)

// Interests holds the eleven questionnaire interest flags.
type Interests struct {
	Nature       bool `json:"nature"`
	Adventure    bool `json:"adventure"`
	Luxury       bool `json:"luxury"`
	Culture      bool `json:"culture"`
	Relaxation   bool `json:"relaxation"`
	Wellness     bool `json:"wellness"`
	LocalLife    bool `json:"local_life"`
	Wildlife     bool `json:"wildlife"`
	Food         bool `json:"food"`
	Spirituality bool `json:"spirituality"`
	EcoTourism   bool `json:"eco_tourism"`
}

// Flag returns the interest flag with the given name.
func (i Interests) Flag(name string) (bool, error) {
	switch name {
	case InterestNature:
		return i.Nature, nil
	case InterestAdventure:
		return i.Adventure, nil
	case InterestLuxury:
		return i.Luxury, nil
	case InterestCulture:
		return i.Culture, nil
	case InterestRelaxation:
		return i.Relaxation, nil
	case InterestWellness:
		return i.Wellness, nil
	case InterestLocalLife:
		return i.LocalLife, nil
	case InterestWildlife:
		return i.Wildlife, nil
	case InterestFood:
		return i.Food, nil
	case InterestSpirituality:
		return i.Spirituality, nil
	case InterestEcoTourism:
		return i.EcoTourism, nil
	default:
		return false, fmt.Errorf("unknown interest %q", name)
	}
}

// TravelerProfile is the classifier input for one request.
type TravelerProfile struct {
	Age       int       `json:"age"`
	Season    Season    `json:"season"`
	Interests Interests `json:"interests"`
}

// Validate checks the profile's numeric ranges.
func (p TravelerProfile) Validate() error {
	if p.Age < 0 {
		return fmt.Errorf("age must be >= 0, got %d", p.Age)
	}
	if !p.Season.Valid() {
		return fmt.Errorf("season must be 0-3, got %d", int(p.Season))
	}
	return nil
}

// Questionnaire is a user's latest preference submission.
// Only one questionnaire is kept per user; a new submission replaces it.
type Questionnaire struct {
	UserID      string      `json:"user_id"`
	Interests   Interests   `json:"interests"`
	Month       time.Month  `json:"month"`
	PartySize   int         `json:"no_of_people"`
	Start       Coordinates `json:"start"`
	StartName   string      `json:"start_location,omitempty"`
	DateOfBirth time.Time   `json:"date_of_birth"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// Profile derives the classifier input as of the given day.
func (q *Questionnaire) Profile(today time.Time) (TravelerProfile, error) {
	season, err := SeasonForMonth(q.Month)
	if err != nil {
		return TravelerProfile{}, err
	}
	return TravelerProfile{
		Age:       AgeOn(q.DateOfBirth, today),
		Season:    season,
		Interests: q.Interests,
	}, nil
}
