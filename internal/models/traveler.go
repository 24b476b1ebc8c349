// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package models

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/goccy/go-json"
)

// TravelerType is one of the nine traveler-type labels.
// The iota order is the classifier's output order and must not change.
type TravelerType uint8

const (
	NatureLover TravelerType = iota
	LuxuryTraveler
	RelaxationSeeker
	CultureSeeker
	Adventurer
	Backpacker
	FoodExplorer
	SpiritualTraveler
	EcoConsciousTraveler

	travelerTypeCount
)

// TravelerTypeCount is the number of traveler-type labels.
const TravelerTypeCount = int(travelerTypeCount)

var travelerTypeNames = [travelerTypeCount]string{
	"Nature Lover",
	"Luxury Traveler",
	"Relaxation Seeker",
	"Culture Seeker",
	"Adventurer",
	"Backpacker",
	"Food Explorer",
	"Spiritual Traveler",
	"Eco-Conscious Traveler",
}

var travelerTypeSlugs = [travelerTypeCount]string{
	"nature_lover",
	"luxury_traveler",
	"relaxation_seeker",
	"culture_seeker",
	"adventurer",
	"backpacker",
	"food_explorer",
	"spiritual_traveler",
	"eco_conscious_traveler",
}

// AllTravelerTypes returns every traveler type in enum order.
func AllTravelerTypes() []TravelerType {
	out := make([]TravelerType, TravelerTypeCount)
	for i := range out {
		out[i] = TravelerType(i)
	}
	return out
}

// Valid reports whether t is a defined traveler type.
func (t TravelerType) Valid() bool {
	return t < travelerTypeCount
}

// String returns the display name, e.g. "Nature Lover".
func (t TravelerType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("TravelerType(%d)", uint8(t))
	}
	return travelerTypeNames[t]
}

// Slug returns the catalog column name, e.g. "nature_lover".
func (t TravelerType) Slug() string {
	if !t.Valid() {
		return ""
	}
	return travelerTypeSlugs[t]
}

// ParseTravelerType accepts either the display name or the slug.
func ParseTravelerType(s string) (TravelerType, error) {
	s = strings.TrimSpace(s)
	for i := 0; i < TravelerTypeCount; i++ {
		if strings.EqualFold(s, travelerTypeNames[i]) || strings.EqualFold(s, travelerTypeSlugs[i]) {
			return TravelerType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown traveler type %q", s)
}

// MarshalText encodes the slug so maps and JSON use the catalog vocabulary.
func (t TravelerType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid traveler type %d", uint8(t))
	}
	return []byte(t.Slug()), nil
}

// UnmarshalText decodes a slug or display name.
func (t *TravelerType) UnmarshalText(text []byte) error {
	parsed, err := ParseTravelerType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// TravelerTypeSet is a set of traveler types stored as a bitmask.
// The zero value is the empty set.
type TravelerTypeSet uint16

// NewTravelerTypeSet builds a set from the given types.
func NewTravelerTypeSet(types ...TravelerType) TravelerTypeSet {
	var s TravelerTypeSet
	for _, t := range types {
		s = s.Add(t)
	}
	return s
}

// Add returns s with t included. Invalid types are ignored.
func (s TravelerTypeSet) Add(t TravelerType) TravelerTypeSet {
	if !t.Valid() {
		return s
	}
	return s | 1<<t
}

// Has reports whether t is in the set.
func (s TravelerTypeSet) Has(t TravelerType) bool {
	return t.Valid() && s&(1<<t) != 0
}

// Len returns the number of members.
func (s TravelerTypeSet) Len() int {
	return bits.OnesCount16(uint16(s))
}

// Intersect returns the members present in both sets.
func (s TravelerTypeSet) Intersect(other TravelerTypeSet) TravelerTypeSet {
	return s & other
}

// Types returns the members in enum order.
func (s TravelerTypeSet) Types() []TravelerType {
	out := make([]TravelerType, 0, s.Len())
	for i := 0; i < TravelerTypeCount; i++ {
		if s.Has(TravelerType(i)) {
			out = append(out, TravelerType(i))
		}
	}
	return out
}

// Names returns the display names of the members in enum order.
func (s TravelerTypeSet) Names() []string {
	types := s.Types()
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = t.String()
	}
	return out
}

// MarshalJSON encodes the set as a list of slugs.
func (s TravelerTypeSet) MarshalJSON() ([]byte, error) {
	types := s.Types()
	slugs := make([]string, len(types))
	for i, t := range types {
		slugs[i] = t.Slug()
	}
	return json.Marshal(slugs)
}

// UnmarshalJSON decodes a list of slugs or display names.
func (s *TravelerTypeSet) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	var set TravelerTypeSet
	for _, name := range names {
		t, err := ParseTravelerType(name)
		if err != nil {
			return err
		}
		set = set.Add(t)
	}
	*s = set
	return nil
}
