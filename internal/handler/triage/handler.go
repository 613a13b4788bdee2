package triage

import (
	"github.com/gin-gonic/gin"

	"github.com/careproclinic/patient-api/internal/model"
	"github.com/careproclinic/patient-api/internal/service/triage"
	"github.com/careproclinic/patient-api/pkg/errors"
	"github.com/careproclinic/patient-api/pkg/httputil"
)

type Handler struct {
	service *triage.Service
}

func NewHandler(service *triage.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Evaluate(c *gin.Context) {
	var req model.TriageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, errors.BadRequest(err.Error(), err))
		return
	}

	suggestion, err := h.service.Evaluate(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, suggestion)
}

func (h *Handler) Symptoms(c *gin.Context) {
	httputil.RespondWithSuccess(c, h.service.Symptoms())
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	triage := r.Group("/triage")
	{
		triage.POST("", h.Evaluate)
		triage.GET("/symptoms", h.Symptoms)
	}
}
