package catalog

import (
	"github.com/gin-gonic/gin"

	"github.com/careproclinic/patient-api/internal/catalog"
	"github.com/careproclinic/patient-api/pkg/httputil"
)

// Handler serves the clinic's static reference data.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Doctors(c *gin.Context) {
	httputil.RespondWithSuccess(c, catalog.Doctors)
}

func (h *Handler) Services(c *gin.Context) {
	httputil.RespondWithSuccess(c, catalog.Services)
}

func (h *Handler) Insurance(c *gin.Context) {
	httputil.RespondWithSuccess(c, gin.H{
		"partners":          catalog.InsurancePartners,
		"plans_by_provider": catalog.PlansByProvider,
	})
}

// CoverageGuidance previews the estimate string the booking form shows.
func (h *Handler) CoverageGuidance(c *gin.Context) {
	httputil.RespondWithSuccess(c, gin.H{
		"guidance": catalog.CoverageGuidance(c.Query("provider"), c.Query("plan")),
	})
}

func (h *Handler) TimeSlots(c *gin.Context) {
	httputil.RespondWithSuccess(c, catalog.TimeSlots)
}

func (h *Handler) FAQs(c *gin.Context) {
	httputil.RespondWithSuccess(c, catalog.FAQs)
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	cat := r.Group("/catalog")
	{
		cat.GET("/doctors", h.Doctors)
		cat.GET("/services", h.Services)
		cat.GET("/insurance", h.Insurance)
		cat.GET("/insurance/coverage", h.CoverageGuidance)
		cat.GET("/timeslots", h.TimeSlots)
		cat.GET("/faqs", h.FAQs)
	}
}
