// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package catalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tomtom215/tripwise/internal/models"
	"github.com/tomtom215/tripwise/internal/validation"
)

// Record is one catalog row in the flat column layout shared by the JSON
// and spreadsheet formats. Column names match the json tags.
type Record struct {
	ID        int64   `json:"destination_id,omitempty" validate:"gte=0"`
	Name      string  `json:"name" validate:"required,max=200"`
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`

	Season0 float64 `json:"season_0"`
	Season1 float64 `json:"season_1"`
	Season2 float64 `json:"season_2"`
	Season3 float64 `json:"season_3"`

	NatureLover          bool `json:"nature_lover"`
	LuxuryTraveler       bool `json:"luxury_traveler"`
	RelaxationSeeker     bool `json:"relaxation_seeker"`
	CultureSeeker        bool `json:"culture_seeker"`
	Adventurer           bool `json:"adventurer"`
	Backpacker           bool `json:"backpacker"`
	FoodExplorer         bool `json:"food_explorer"`
	SpiritualTraveler    bool `json:"spiritual_traveler"`
	EcoConsciousTraveler bool `json:"eco_conscious_traveler"`

	Description string  `json:"description"`
	ThingsToDo  string  `json:"things_to_do"` // '/'-separated
	AvgCost     float64 `json:"avg_cost" validate:"gte=0"`

	HillCountry bool `json:"hill_country"`
	Coastal     bool `json:"coastal"`
	DryZone     bool `json:"dry_zone"`
	Urban       bool `json:"urban"`
}

// flags returns pointers to the traveler-type flags in models.TravelerType
// order.
func (r *Record) flags() [models.TravelerTypeCount]*bool {
	return [models.TravelerTypeCount]*bool{
		&r.NatureLover,
		&r.LuxuryTraveler,
		&r.RelaxationSeeker,
		&r.CultureSeeker,
		&r.Adventurer,
		&r.Backpacker,
		&r.FoodExplorer,
		&r.SpiritualTraveler,
		&r.EcoConsciousTraveler,
	}
}

func (r *Record) seasons() [models.SeasonCount]*float64 {
	return [models.SeasonCount]*float64{&r.Season0, &r.Season1, &r.Season2, &r.Season3}
}

// Validate checks field constraints. Seasonal affinities only need to be
// finite; they are not normalized.
func (r *Record) Validate() error {
	if verr := validation.ValidateStruct(r); verr != nil {
		return verr
	}
	for i, s := range r.seasons() {
		if math.IsNaN(*s) || math.IsInf(*s, 0) {
			return fmt.Errorf("season_%d must be a finite number", i)
		}
	}
	return nil
}

// Destination converts the record to the catalog model.
func (r *Record) Destination() models.Destination {
	d := models.Destination{
		ID:          r.ID,
		Name:        strings.TrimSpace(r.Name),
		Location:    models.Coordinates{Latitude: r.Latitude, Longitude: r.Longitude},
		AvgCost:     r.AvgCost,
		Description: r.Description,
		ThingsToDo:  r.ThingsToDo,
		Regions: models.Regions{
			HillCountry: r.HillCountry,
			Coastal:     r.Coastal,
			DryZone:     r.DryZone,
			Urban:       r.Urban,
		},
	}
	for i, s := range r.seasons() {
		d.Seasonal[i] = *s
	}
	for i, f := range r.flags() {
		if *f {
			d.Affinities = d.Affinities.Add(models.TravelerType(i))
		}
	}
	return d
}

// FromDestination converts a catalog model back to a record, for export.
func FromDestination(d *models.Destination) Record {
	r := Record{
		ID:          d.ID,
		Name:        d.Name,
		Latitude:    d.Location.Latitude,
		Longitude:   d.Location.Longitude,
		Description: d.Description,
		ThingsToDo:  d.ThingsToDo,
		AvgCost:     d.AvgCost,
		HillCountry: d.Regions.HillCountry,
		Coastal:     d.Regions.Coastal,
		DryZone:     d.Regions.DryZone,
		Urban:       d.Regions.Urban,
	}
	for i, s := range r.seasons() {
		*s = d.Seasonal[i]
	}
	for i, f := range r.flags() {
		*f = d.Affinities.Has(models.TravelerType(i))
	}
	return r
}

// column binds a spreadsheet header to a record field.
type column struct {
	name string
	set  func(r *Record, v string) error
}

// columns lists every recognized header in export order.
var columns = buildColumns()

func buildColumns() []column {
	cols := []column{
		{"destination_id", func(r *Record, v string) error { return parseInt(&r.ID, v) }},
		{"name", func(r *Record, v string) error { r.Name = v; return nil }},
		{"latitude", func(r *Record, v string) error { return parseFloat(&r.Latitude, v) }},
		{"longitude", func(r *Record, v string) error { return parseFloat(&r.Longitude, v) }},
	}
	for i := 0; i < models.SeasonCount; i++ {
		idx := i
		cols = append(cols, column{fmt.Sprintf("season_%d", idx), func(r *Record, v string) error {
			return parseFloat(r.seasons()[idx], v)
		}})
	}
	for _, t := range models.AllTravelerTypes() {
		idx := int(t)
		cols = append(cols, column{t.Slug(), func(r *Record, v string) error {
			return parseBool(r.flags()[idx], v)
		}})
	}
	cols = append(cols,
		column{"description", func(r *Record, v string) error { r.Description = v; return nil }},
		column{"things_to_do", func(r *Record, v string) error { r.ThingsToDo = v; return nil }},
		column{"avg_cost", func(r *Record, v string) error { return parseFloat(&r.AvgCost, v) }},
		column{"hill_country", func(r *Record, v string) error { return parseBool(&r.HillCountry, v) }},
		column{"coastal", func(r *Record, v string) error { return parseBool(&r.Coastal, v) }},
		column{"dry_zone", func(r *Record, v string) error { return parseBool(&r.DryZone, v) }},
		column{"urban", func(r *Record, v string) error { return parseBool(&r.Urban, v) }},
	)
	return cols
}

// Columns returns the spreadsheet headers in export order.
func Columns() []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = c.name
	}
	return out
}

// values renders the record in Columns order.
func (r *Record) values() []interface{} {
	out := []interface{}{r.ID, r.Name, r.Latitude, r.Longitude}
	for _, s := range r.seasons() {
		out = append(out, *s)
	}
	for _, f := range r.flags() {
		out = append(out, *f)
	}
	return append(out, r.Description, r.ThingsToDo, r.AvgCost, r.HillCountry, r.Coastal, r.DryZone, r.Urban)
}

func parseFloat(dst *float64, v string) error {
	if v == "" {
		*dst = 0
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q", v)
	}
	*dst = f
	return nil
}

func parseInt(dst *int64, v string) error {
	if v == "" {
		*dst = 0
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid integer %q", v)
	}
	*dst = n
	return nil
}

// parseBool accepts the spellings spreadsheets produce for flags.
func parseBool(dst *bool, v string) error {
	switch strings.ToLower(v) {
	case "", "0", "false", "no", "n":
		*dst = false
	case "1", "true", "yes", "y", "x":
		*dst = true
	default:
		return fmt.Errorf("invalid flag %q", v)
	}
	return nil
}
