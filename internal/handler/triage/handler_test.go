package triage

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careproclinic/patient-api/internal/model"
	triageService "github.com/careproclinic/patient-api/internal/service/triage"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	NewHandler(triageService.NewService()).RegisterRoutes(engine.Group("/api/v1"))
	return engine
}

func TestEvaluateEndpoint(t *testing.T) {
	engine := newTestRouter(t)

	body, err := json.Marshal(model.TriageRequest{
		Symptom:  "Chest pain or palpitations",
		Severity: model.TriageSeveritySevere,
		Duration: "1-3 days",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/triage", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data model.TriageSuggestion `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Heart Care", resp.Data.Service)
	assert.Equal(t, "Cardiology", resp.Data.Department)
	assert.Equal(t, "High", resp.Data.Confidence)
}

func TestEvaluateEndpointValidation(t *testing.T) {
	engine := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/triage", bytes.NewReader([]byte(`{"severity":"odd"}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSymptomsEndpoint(t *testing.T) {
	engine := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/triage/symptoms", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 6)
}
