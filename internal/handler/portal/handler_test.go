package portal

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careproclinic/patient-api/internal/model"
	kvrepo "github.com/careproclinic/patient-api/internal/repository/kv"
	portalService "github.com/careproclinic/patient-api/internal/service/portal"
	"github.com/careproclinic/patient-api/internal/storage"
	"github.com/careproclinic/patient-api/pkg/security"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := storage.NewStore(storage.NewMemoryBackend(), zerolog.Nop())
	seeder := kvrepo.NewSeeder(store)
	svc := portalService.NewService(
		kvrepo.NewPortalUserRepository(store, seeder),
		kvrepo.NewSessionRepository(store),
		kvrepo.NewVisitHistoryRepository(store, seeder),
		security.NewBcryptHasher(4),
		zerolog.Nop(),
	)

	engine := gin.New()
	NewHandler(svc).RegisterRoutes(engine.Group("/api/v1"))
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestLoginLogoutSessionFlow(t *testing.T) {
	engine := newTestRouter(t)

	w := doJSON(t, engine, http.MethodGet, "/api/v1/portal/session", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var empty struct {
		Data *model.PortalSession `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &empty))
	assert.Nil(t, empty.Data)

	w = doJSON(t, engine, http.MethodPost, "/api/v1/portal/login", model.LoginRequest{
		Email:    "patient@carepro.com",
		Password: "patient123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/api/v1/portal/session", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var active struct {
		Data *model.PortalSession `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &active))
	require.NotNil(t, active.Data)
	assert.Equal(t, "Alex Carter", active.Data.Name)

	w = doJSON(t, engine, http.MethodPost, "/api/v1/portal/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/api/v1/portal/session", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &empty))
	assert.Nil(t, empty.Data)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	engine := newTestRouter(t)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/portal/login", model.LoginRequest{
		Email:    "patient@carepro.com",
		Password: "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	engine := newTestRouter(t)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/portal/register", model.RegisterRequest{
		Name:     "Impostor",
		Email:    "patient@carepro.com",
		Password: "secret1",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterDoesNotEchoPassword(t *testing.T) {
	engine := newTestRouter(t)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/portal/register", model.RegisterRequest{
		Name:     "Maya Patel",
		Email:    "maya@example.com",
		Password: "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "secret1")

	var resp struct {
		Data model.PortalUser `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data.Password)
}

func TestVisitHistoryRequiresEmail(t *testing.T) {
	engine := newTestRouter(t)

	w := doJSON(t, engine, http.MethodGet, "/api/v1/portal/visits", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/api/v1/portal/visits?email=patient@carepro.com", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []model.VisitHistory `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)
}
