package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "proforma/internal/errors"
	"proforma/internal/services"
	"proforma/internal/uuid"
)

type mockReportService struct {
	exportCSVFn func(scenarioID string) ([]byte, string, error)
}

func (m *mockReportService) ExportCSV(scenarioID string) ([]byte, string, error) {
	if m.exportCSVFn != nil {
		return m.exportCSVFn(scenarioID)
	}
	return []byte("year\n1\n"), "scenario-projection.csv", nil
}

var _ services.ReportServicer = (*mockReportService)(nil)

func setupReportRouter(handler *ReportHandler) *gin.Engine {
	r := gin.New()
	r.GET("/scenarios/:id/export", handler.ExportProjection)
	return r
}

func TestReportHandler_ExportProjection(t *testing.T) {
	t.Run("returns csv attachment", func(t *testing.T) {
		id := uuid.New()
		svc := &mockReportService{
			exportCSVFn: func(scenarioID string) ([]byte, string, error) {
				if scenarioID != id {
					t.Errorf("expected scenario ID %s, got %s", id, scenarioID)
				}
				return []byte("year,gop\n1,100\n"), "resort-projection.csv", nil
			},
		}
		r := setupReportRouter(NewReportHandler(svc))

		rec := doRequest(r, "GET", "/scenarios/"+id+"/export", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if ct := rec.Header().Get("Content-Type"); ct != "text/csv" {
			t.Errorf("expected Content-Type text/csv, got %q", ct)
		}
		cd := rec.Header().Get("Content-Disposition")
		if !strings.Contains(cd, "resort-projection.csv") {
			t.Errorf("expected filename in Content-Disposition, got %q", cd)
		}
		if !strings.HasPrefix(rec.Body.String(), "year,gop") {
			t.Errorf("unexpected body: %s", rec.Body.String())
		}
	})

	t.Run("rejects invalid id", func(t *testing.T) {
		r := setupReportRouter(NewReportHandler(&mockReportService{}))

		rec := doRequest(r, "GET", "/scenarios/abc/export", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("returns 404 when scenario missing", func(t *testing.T) {
		svc := &mockReportService{
			exportCSVFn: func(string) ([]byte, string, error) {
				return nil, "", apperrors.ErrScenarioNotFound
			},
		}
		r := setupReportRouter(NewReportHandler(svc))

		rec := doRequest(r, "GET", "/scenarios/"+uuid.New()+"/export", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
		}
	})
}
