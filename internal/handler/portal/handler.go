package portal

import (
	"github.com/gin-gonic/gin"

	"github.com/careproclinic/patient-api/internal/model"
	"github.com/careproclinic/patient-api/internal/service/portal"
	"github.com/careproclinic/patient-api/pkg/errors"
	"github.com/careproclinic/patient-api/pkg/httputil"
)

type Handler struct {
	service *portal.Service
}

func NewHandler(service *portal.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, errors.BadRequest(err.Error(), err))
		return
	}

	user, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithCreated(c, user)
}

func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, errors.BadRequest(err.Error(), err))
		return
	}

	session, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, session)
}

func (h *Handler) Logout(c *gin.Context) {
	if err := h.service.Logout(c.Request.Context()); err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, gin.H{"logged_out": true})
}

// Session reports the active login; data is null when logged out.
func (h *Handler) Session(c *gin.Context) {
	session, err := h.service.Session(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, session)
}

func (h *Handler) VisitHistory(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		httputil.RespondWithError(c, errors.BadRequest("email is required", nil))
		return
	}

	visits, err := h.service.VisitHistory(c.Request.Context(), email)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, visits)
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	portal := r.Group("/portal")
	{
		portal.POST("/register", h.Register)
		portal.POST("/login", h.Login)
		portal.POST("/logout", h.Logout)
		portal.GET("/session", h.Session)
		portal.GET("/visits", h.VisitHistory)
	}
}
