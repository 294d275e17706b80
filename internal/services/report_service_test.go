package services

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"
	"testing"

	"proforma/internal/testutil"
	"proforma/internal/uuid"
)

func TestExportCSV(t *testing.T) {
	t.Run("one_row_per_year", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		scenarios := NewScenarioService(db)
		svc := NewReportService(NewProjectionService(scenarios, 0))
		scenario := testutil.CreateTestScenario(t, db)

		data, filename, err := svc.ExportCSV(scenario.ID)
		testutil.AssertNoError(t, err)

		if !strings.HasSuffix(filename, "-projection.csv") {
			t.Errorf("unexpected filename %q", filename)
		}

		records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
		if err != nil {
			t.Fatalf("failed to parse CSV: %v", err)
		}
		if len(records) != 11 {
			t.Fatalf("expected header plus 10 rows, got %d records", len(records))
		}

		header := records[0]
		if header[0] != "year" || header[1] != "calendar_year" {
			t.Errorf("unexpected header start: %v", header[:2])
		}

		for i, record := range records[1:] {
			year, err := strconv.Atoi(record[0])
			if err != nil {
				t.Fatalf("row %d: bad year %q", i, record[0])
			}
			if year != i+1 {
				t.Errorf("row %d: expected year %d, got %d", i, i+1, year)
			}
		}
	})

	t.Run("filename_slug", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		scenarios := NewScenarioService(db)
		svc := NewReportService(NewProjectionService(scenarios, 0))
		scenario := testutil.CreateTestScenarioWithName(t, db, "Grand Hotel (2025)!")

		_, filename, err := svc.ExportCSV(scenario.ID)
		testutil.AssertNoError(t, err)

		if filename != "grand-hotel-2025-projection.csv" {
			t.Errorf("expected slugged filename, got %q", filename)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		scenarios := NewScenarioService(db)
		svc := NewReportService(NewProjectionService(scenarios, 0))

		_, _, err := svc.ExportCSV(uuid.New())
		testutil.AssertAppError(t, err, "SCENARIO_NOT_FOUND")
	})
}
