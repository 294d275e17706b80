package integration

import (
	"math"
	"net/http"
	"strings"
	"testing"
)

const resortScenario = `{
	"name": "Harbour Resort",
	"currency": "USD",
	"initial_investment": 1000000,
	"keys": 10,
	"purchase_year": 2025,
	"purchase_month": 1,
	"y1_occupancy": 50,
	"y1_adr": 100,
	"y1_fb": 50000,
	"y1_spa": 20000,
	"y1_ood": 10000,
	"y1_misc": 5000,
	"occupancy_steps": [null, null, null, null, null, null, null, null, null],
	"adr_growth": 3,
	"fb_growth": 2,
	"spa_growth": 2,
	"rooms_cost_pct": 25,
	"fb_cost_pct": 60,
	"spa_cost_pct": 50,
	"ood_cost_pct": 40,
	"misc_cost_pct": 30,
	"utilities_pct": 4,
	"admin_pct": 8,
	"sales_pct": 5,
	"maintenance_pct": 4,
	"y1_cam": 12000,
	"y1_base_fee": 20000,
	"y1_tech_fee": 4000,
	"incentive_fee_pct": 10,
	"property_ready": true
}`

func TestScenarioLifecycle(t *testing.T) {
	app := setupApp(t)

	// Create
	id := app.createScenario(t, resortScenario)

	// List
	rec := app.request("GET", "/api/v1/scenarios", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list failed: %d %s", rec.Code, rec.Body.String())
	}
	list := parseJSON(t, rec)
	if data := list["data"].([]interface{}); len(data) != 1 {
		t.Fatalf("expected 1 scenario, got %d", len(data))
	}

	// Get
	rec = app.request("GET", "/api/v1/scenarios/"+id, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get failed: %d %s", rec.Code, rec.Body.String())
	}
	got := parseJSON(t, rec)["scenario"].(map[string]interface{})
	if got["name"] != "Harbour Resort" {
		t.Errorf("expected name Harbour Resort, got %v", got["name"])
	}

	// Duplicate name rejected
	rec = app.request("POST", "/api/v1/scenarios", resortScenario)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate name, got %d: %s", rec.Code, rec.Body.String())
	}

	// Update
	renamed := strings.Replace(resortScenario, "Harbour Resort", "Harbour Resort II", 1)
	rec = app.request("PUT", "/api/v1/scenarios/"+id, renamed)
	if rec.Code != http.StatusOK {
		t.Fatalf("update failed: %d %s", rec.Code, rec.Body.String())
	}

	// Delete
	rec = app.request("DELETE", "/api/v1/scenarios/"+id, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete failed: %d %s", rec.Code, rec.Body.String())
	}
	rec = app.request("GET", "/api/v1/scenarios/"+id, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rec.Code)
	}
}

func TestProjectionFlow(t *testing.T) {
	app := setupApp(t)
	id := app.createScenario(t, resortScenario)

	rec := app.request("GET", "/api/v1/scenarios/"+id+"/projection", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("projection failed: %d %s", rec.Code, rec.Body.String())
	}

	result := parseJSON(t, rec)
	years := result["years"].([]interface{})
	if len(years) != 10 {
		t.Fatalf("expected 10 years, got %d", len(years))
	}

	// January purchase, ready at close: a full first year of operations.
	y1 := years[0].(map[string]interface{})
	wantRooms := 10.0 * 365 * 0.5 * 100
	if got := y1["rooms_revenue"].(float64); math.Abs(got-wantRooms) > 1e-6 {
		t.Errorf("expected year-one rooms revenue %f, got %f", wantRooms, got)
	}
	if got := y1["occupancy"].(float64); got != 50 {
		t.Errorf("expected year-one occupancy 50, got %f", got)
	}

	// Null occupancy steps pick up the server default of 2 points.
	y2 := years[1].(map[string]interface{})
	if got := y2["occupancy"].(float64); got != 52 {
		t.Errorf("expected year-two occupancy 52, got %f", got)
	}
	if got := y2["adr"].(float64); math.Abs(got-103) > 1e-6 {
		t.Errorf("expected year-two ADR 103, got %f", got)
	}

	summary, ok := result["summary"].(map[string]interface{})
	if !ok {
		t.Fatal("expected summary object in response")
	}
	if _, ok := summary["total_revenue"]; !ok {
		t.Error("expected total_revenue in summary")
	}
}

func TestExportFlow(t *testing.T) {
	app := setupApp(t)
	id := app.createScenario(t, resortScenario)

	rec := app.request("GET", "/api/v1/scenarios/"+id+"/export", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("export failed: %d %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("expected Content-Type text/csv, got %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "harbour-resort-projection.csv") {
		t.Errorf("unexpected Content-Disposition %q", cd)
	}

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	if len(lines) != 11 {
		t.Fatalf("expected header plus 10 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "year,calendar_year") {
		t.Errorf("unexpected CSV header: %s", lines[0])
	}
}

func TestValidationFlow(t *testing.T) {
	app := setupApp(t)

	t.Run("missing_required_fields", func(t *testing.T) {
		rec := app.request("POST", "/api/v1/scenarios", `{"name": "Empty"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("bad_month", func(t *testing.T) {
		body := strings.Replace(resortScenario, `"purchase_month": 1,`, `"purchase_month": 0,`, 1)
		rec := app.request("POST", "/api/v1/scenarios", body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("invalid_uuid", func(t *testing.T) {
		rec := app.request("GET", "/api/v1/scenarios/nope/projection", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
		}
	})
}
