// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package catalog

import (
	"bytes"
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/tomtom215/tripwise/internal/models"
)

func kandy() Record {
	return Record{
		ID:            7,
		Name:          "Kandy",
		Latitude:      7.2906,
		Longitude:     80.6337,
		Season0:       0.8,
		Season1:       0.6,
		Season2:       0.4,
		Season3:       0.7,
		NatureLover:   true,
		CultureSeeker: true,
		Description:   "Hill capital",
		ThingsToDo:    "Temple of the Tooth/Botanical Garden",
		AvgCost:       45,
		HillCountry:   true,
		Urban:         true,
	}
}

func TestRecord_Destination(t *testing.T) {
	t.Parallel()

	rec := kandy()
	d := rec.Destination()

	if d.ID != 7 || d.Name != "Kandy" || d.Location.Latitude != 7.2906 {
		t.Errorf("destination = %+v", d)
	}
	want := models.NewTravelerTypeSet(models.NatureLover, models.CultureSeeker)
	if d.Affinities != want {
		t.Errorf("Affinities = %v, want %v", d.Affinities.Names(), want.Names())
	}
	if d.Seasonal != [models.SeasonCount]float64{0.8, 0.6, 0.4, 0.7} {
		t.Errorf("Seasonal = %v", d.Seasonal)
	}
	if !d.Regions.HillCountry || !d.Regions.Urban || d.Regions.Coastal {
		t.Errorf("Regions = %+v", d.Regions)
	}
	if got := d.Activities(); len(got) != 2 {
		t.Errorf("Activities() = %v", got)
	}

	if back := FromDestination(&d); back != rec {
		t.Errorf("FromDestination() = %+v, want %+v", back, rec)
	}
}

func TestRecord_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(r *Record)
		wantErr bool
	}{
		{"valid", func(*Record) {}, false},
		{"missing name", func(r *Record) { r.Name = "" }, true},
		{"latitude out of range", func(r *Record) { r.Latitude = 91 }, true},
		{"longitude out of range", func(r *Record) { r.Longitude = -181 }, true},
		{"negative cost", func(r *Record) { r.AvgCost = -1 }, true},
		{"NaN season", func(r *Record) { r.Season2 = math.NaN() }, true},
		{"season above one is allowed", func(r *Record) { r.Season0 = 3 }, false},
		{"no flags is allowed", func(r *Record) { r.NatureLover, r.CultureSeeker = false, false }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := kandy()
			tt.mutate(&rec)
			if err := rec.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestReadJSON(t *testing.T) {
	t.Parallel()

	rows, err := ReadJSON(strings.NewReader(`[
		{"name": "Kandy", "latitude": 7.29, "longitude": 80.63, "season_0": 0.8, "nature_lover": true, "avg_cost": 45},
		{"name": "Galle", "latitude": 6.03, "longitude": 80.21, "coastal": true}
	]`))
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if len(rows) != 2 || rows[1].Number != 2 {
		t.Fatalf("rows = %+v", rows)
	}
	if !rows[0].Record.NatureLover || rows[0].Record.Season0 != 0.8 || !rows[1].Record.Coastal {
		t.Errorf("records = %+v", rows)
	}

	if _, err := ReadJSON(strings.NewReader(`[{"name": "Kandy", "beach": true}]`)); err == nil {
		t.Error("unknown field should be rejected")
	}
	if _, err := ReadJSON(strings.NewReader(`{"name": "Kandy"}`)); err == nil {
		t.Error("a bare object should be rejected")
	}
}

func TestXLSX_RoundTrip(t *testing.T) {
	t.Parallel()

	galle := Record{Name: "Galle", Latitude: 6.0535, Longitude: 80.2210, Season0: 0.9, Coastal: true, RelaxationSeeker: true, AvgCost: 60}
	in := []Record{kandy(), galle}

	var buf bytes.Buffer
	if err := WriteXLSX(&buf, in); err != nil {
		t.Fatalf("WriteXLSX() error = %v", err)
	}

	rows, err := ReadXLSX(&buf, DefaultSheet)
	if err != nil {
		t.Fatalf("ReadXLSX() error = %v", err)
	}
	if len(rows) != len(in) {
		t.Fatalf("got %d rows, want %d", len(rows), len(in))
	}
	for i, row := range rows {
		if row.Err != nil {
			t.Fatalf("row %d error = %v", row.Number, row.Err)
		}
		if row.Number != i+2 {
			t.Errorf("row number = %d, want %d", row.Number, i+2)
		}
		if row.Record != in[i] {
			t.Errorf("row %d = %+v, want %+v", i, row.Record, in[i])
		}
	}
}

func TestReadXLSX_Headers(t *testing.T) {
	t.Parallel()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	sheetRows := [][]interface{}{
		{"Name", "Latitude", "Longitude", "Nature Lover", "Avg Cost", "Notes"},
		{"Ella", 6.8667, 81.0466, "yes", 30, "ignored"},
		{},
		{"Sigiriya", 7.957, 80.7603, "maybe", 40},
	}
	for i := range sheetRows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &sheetRows[i]); err != nil {
			t.Fatal(err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}

	rows, err := ReadXLSX(buf, "")
	if err != nil {
		t.Fatalf("ReadXLSX() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2 (blank row skipped)", len(rows))
	}
	ella := rows[0]
	if ella.Err != nil || ella.Record.Name != "Ella" || !ella.Record.NatureLover || ella.Record.AvgCost != 30 {
		t.Errorf("Ella row = %+v", ella)
	}
	if rows[1].Number != 4 || rows[1].Err == nil {
		t.Errorf("Sigiriya row = %+v, want a flag parse error on row 4", rows[1])
	}
}

func TestReadXLSX_MissingNameColumn(t *testing.T) {
	t.Parallel()

	f := excelize.NewFile()
	header := []interface{}{"latitude", "longitude"}
	if err := f.SetSheetRow(f.GetSheetName(0), "A1", &header); err != nil {
		t.Fatal(err)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ReadXLSX(buf, ""); !errors.Is(err, ErrMissingColumn) {
		t.Errorf("ReadXLSX() error = %v, want ErrMissingColumn", err)
	}
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "catalog.json")
	if err := os.WriteFile(jsonPath, []byte(`[{"name": "Mirissa", "latitude": 5.9483, "longitude": 80.4716}]`), 0o600); err != nil {
		t.Fatal(err)
	}
	rows, err := ReadFile(jsonPath)
	if err != nil || len(rows) != 1 {
		t.Fatalf("ReadFile(json) = %v, %v", rows, err)
	}

	csvPath := filepath.Join(dir, "catalog.csv")
	if err := os.WriteFile(csvPath, []byte("name\nMirissa\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadFile(csvPath); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("ReadFile(csv) error = %v, want ErrUnsupportedFormat", err)
	}
}

type fakeUpserter struct {
	upserted []models.Destination
	failOn   string
	err      error
}

func (f *fakeUpserter) UpsertDestination(_ context.Context, d *models.Destination) (int64, error) {
	if d.Name == f.failOn {
		return 0, f.err
	}
	d.ID = int64(len(f.upserted) + 1)
	f.upserted = append(f.upserted, *d)
	return d.ID, nil
}

func TestImporter_Import(t *testing.T) {
	t.Parallel()

	bad := kandy()
	bad.Name = ""
	rows := []Row{
		{Number: 1, Record: kandy()},
		{Number: 2, Record: bad},
		{Number: 3, Err: errors.New("column latitude: invalid number \"north\"")},
		{Number: 4, Record: Record{Name: "Broken", Latitude: 1, Longitude: 1}},
		{Number: 5, Record: Record{Name: "Jaffna", Latitude: 9.6615, Longitude: 80.0255}},
	}
	store := &fakeUpserter{failOn: "Broken", err: errors.New("constraint violation")}

	stats, err := NewImporter(store, false).Import(context.Background(), rows)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if stats.Total != 5 || stats.Imported != 2 || stats.Skipped != 2 || stats.Failed != 1 {
		t.Errorf("stats = %+v", stats)
	}
	if len(stats.Errors) != 3 || stats.Errors[0].Row != 2 || stats.Errors[2].Name != "Broken" {
		t.Errorf("errors = %+v", stats.Errors)
	}
	if len(store.upserted) != 2 || store.upserted[1].Name != "Jaffna" {
		t.Errorf("upserted = %+v", store.upserted)
	}
	if stats.EndTime.IsZero() || stats.Duration() < 0 {
		t.Error("EndTime should be set")
	}
}

func TestImporter_DryRun(t *testing.T) {
	t.Parallel()

	store := &fakeUpserter{}
	stats, err := NewImporter(store, true).Import(context.Background(), []Row{{Number: 1, Record: kandy()}})
	if err != nil {
		t.Fatal(err)
	}
	if !stats.DryRun || stats.Imported != 1 || len(store.upserted) != 0 {
		t.Errorf("dry run stats = %+v, upserted = %d", stats, len(store.upserted))
	}
}

func TestImporter_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stats, err := NewImporter(&fakeUpserter{}, false).Import(ctx, []Row{{Number: 1, Record: kandy()}})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Import() error = %v, want context.Canceled", err)
	}
	if stats.Imported != 0 {
		t.Errorf("Imported = %d", stats.Imported)
	}
}
