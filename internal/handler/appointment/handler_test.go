package appointment

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
	"github.com/careproclinic/patient-api/internal/service/booking"
	"github.com/careproclinic/patient-api/internal/storage"
	"github.com/careproclinic/patient-api/pkg/httputil"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := storage.NewStore(storage.NewMemoryBackend(), zerolog.Nop())
	seeder := kvrepo.NewSeeder(store)
	svc := booking.NewService(
		kvrepo.NewAppointmentRepository(store, seeder),
		kvrepo.NewBookingReferenceRepository(store, 13000),
		nil,
		booking.Config{AllowRescheduleCancelled: true},
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

func TestCreateAppointmentEndpoint(t *testing.T) {
	engine := newTestRouter(t)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/appointments", model.CreateAppointmentRequest{
		Name:      "Maya Patel",
		Email:     "maya@example.com",
		Phone:     "+1 415 555 0199",
		VisitType: model.VisitTypeVideo,
		Service:   "Heart Care",
		Date:      "2026-03-12",
		TimeSlot:  "09:00 AM",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool              `json:"success"`
		Data    model.Appointment `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "CP-13000", resp.Data.ReferenceID)
	assert.Equal(t, model.BookingStatusPending, resp.Data.Status)
	assert.NotEmpty(t, resp.Data.MeetingLink)
}

func TestCreateAppointmentValidation(t *testing.T) {
	engine := newTestRouter(t)

	// Missing required fields.
	w := doJSON(t, engine, http.MethodPost, "/api/v1/appointments", map[string]string{"name": "Maya Patel"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown visit type.
	w = doJSON(t, engine, http.MethodPost, "/api/v1/appointments", map[string]string{
		"name":       "Maya Patel",
		"email":      "maya@example.com",
		"phone":      "+1 415 555 0199",
		"visit_type": "phone",
		"service":    "Heart Care",
		"date":       "2026-03-12",
		"time_slot":  "09:00 AM",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListAppointmentsEndpoint(t *testing.T) {
	engine := newTestRouter(t)

	w := doJSON(t, engine, http.MethodGet, "/api/v1/appointments", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []model.Appointment `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "CP-12001", resp.Data[0].ReferenceID)
}

func TestCancelUnknownAppointment(t *testing.T) {
	engine := newTestRouter(t)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/appointments/missing/cancel", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	var resp httputil.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, http.StatusNotFound, resp.Error.Code)
}

func TestCancelAndRescheduleFlow(t *testing.T) {
	engine := newTestRouter(t)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/appointments", model.CreateAppointmentRequest{
		Name:      "Maya Patel",
		Email:     "maya@example.com",
		Phone:     "+1 415 555 0199",
		VisitType: model.VisitTypeInPerson,
		Service:   "General Consultation",
		Date:      "2026-03-12",
		TimeSlot:  "09:00 AM",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data model.Appointment `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id := created.Data.ID

	w = doJSON(t, engine, http.MethodPost, "/api/v1/appointments/"+id+"/cancel", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, engine, http.MethodPost, "/api/v1/appointments/"+id+"/reschedule", model.RescheduleAppointmentRequest{
		Date:     "2026-03-20",
		TimeSlot: "03:30 PM",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/api/v1/appointments/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got struct {
		Data model.Appointment `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, model.BookingStatusPending, got.Data.Status)
	assert.Equal(t, "2026-03-20", got.Data.Date)
}
