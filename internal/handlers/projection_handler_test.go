package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "proforma/internal/errors"
	"proforma/internal/models"
	"proforma/internal/projection"
	"proforma/internal/services"
	"proforma/internal/uuid"
)

type mockProjectionService struct {
	getProjectionFn func(scenarioID string) (*services.ProjectionResult, error)
}

func (m *mockProjectionService) GetProjection(scenarioID string) (*services.ProjectionResult, error) {
	if m.getProjectionFn != nil {
		return m.getProjectionFn(scenarioID)
	}
	return &services.ProjectionResult{Scenario: &models.Scenario{}}, nil
}

var _ services.ProjectionServicer = (*mockProjectionService)(nil)

func setupProjectionRouter(handler *ProjectionHandler) *gin.Engine {
	r := gin.New()
	r.GET("/scenarios/:id/projection", handler.GetProjection)
	return r
}

func TestProjectionHandler_GetProjection(t *testing.T) {
	t.Run("returns projection", func(t *testing.T) {
		id := uuid.New()
		svc := &mockProjectionService{
			getProjectionFn: func(scenarioID string) (*services.ProjectionResult, error) {
				if scenarioID != id {
					t.Errorf("expected scenario ID %s, got %s", id, scenarioID)
				}
				years := make([]projection.Year, 10)
				for i := range years {
					years[i] = projection.Year{Year: i + 1, CalendarYear: 2025 + i}
				}
				return &services.ProjectionResult{
					Scenario: &models.Scenario{Base: models.Base{ID: id}, Name: "Resort"},
					Years:    years,
					Summary:  projection.Summary{},
				}, nil
			},
		}
		r := setupProjectionRouter(NewProjectionHandler(svc))

		rec := doRequest(r, "GET", "/scenarios/"+id+"/projection", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		years := result["years"].([]interface{})
		if len(years) != 10 {
			t.Errorf("expected 10 years, got %d", len(years))
		}
		if _, ok := result["summary"]; !ok {
			t.Error("expected summary in response")
		}
	})

	t.Run("rejects invalid id", func(t *testing.T) {
		r := setupProjectionRouter(NewProjectionHandler(&mockProjectionService{}))

		rec := doRequest(r, "GET", "/scenarios/123/projection", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("returns 404 when scenario missing", func(t *testing.T) {
		svc := &mockProjectionService{
			getProjectionFn: func(string) (*services.ProjectionResult, error) {
				return nil, apperrors.ErrScenarioNotFound
			},
		}
		r := setupProjectionRouter(NewProjectionHandler(svc))

		rec := doRequest(r, "GET", "/scenarios/"+uuid.New()+"/projection", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
		}
		assertErrorCode(t, parseJSON(t, rec), "SCENARIO_NOT_FOUND")
	})
}
