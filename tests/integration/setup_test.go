package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"proforma/internal/handlers"
	"proforma/internal/logger"
	"proforma/internal/middleware"
	"proforma/internal/models"
	"proforma/internal/services"
	"proforma/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&models.Scenario{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory
// SQLite. The default occupancy step is 2 percentage points.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	scenarioService := services.NewScenarioService(db)
	projectionService := services.NewProjectionService(scenarioService, 2)
	reportService := services.NewReportService(projectionService)

	// Handlers
	scenarioHandler := handlers.NewScenarioHandler(scenarioService)
	projectionHandler := handlers.NewProjectionHandler(projectionService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	scenarios := v1.Group("/scenarios")
	scenarios.POST("", scenarioHandler.CreateScenario)
	scenarios.GET("", scenarioHandler.GetScenarios)
	scenarios.GET("/:id", scenarioHandler.GetScenario)
	scenarios.PUT("/:id", scenarioHandler.UpdateScenario)
	scenarios.DELETE("/:id", scenarioHandler.DeleteScenario)
	scenarios.GET("/:id/projection", projectionHandler.GetProjection)
	scenarios.GET("/:id/export", reportHandler.ExportProjection)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// createScenario posts the given scenario payload and returns the new ID.
func (app *testApp) createScenario(t *testing.T, body string) string {
	t.Helper()
	rec := app.request("POST", "/api/v1/scenarios", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create scenario failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	scenario := result["scenario"].(map[string]interface{})
	return scenario["id"].(string)
}
