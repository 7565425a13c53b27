package assessments

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pia-backend/internal/assessment"
	"pia-backend/internal/assessment/catalog"
	"pia-backend/internal/report"
	"pia-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the assessments service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches assessment routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/assessments", h.createAssessment)
	rg.GET("/assessments/:id", h.getAssessment)
	rg.PUT("/assessments/:id/profile", h.updateProfile)
	rg.PUT("/assessments/:id/selection", h.updateSelection)
	rg.DELETE("/assessments/:id", h.deleteAssessment)
	rg.GET("/assessments/:id/report", h.exportReport)
}

func (h *Handler) createAssessment(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	profile, err := req.toProfile()
	if err != nil {
		respondEngineError(c, err)
		return
	}

	snap, err := h.Svc.Create(c.Request.Context(), profile, req.Tools)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.Set("assessmentId", snap.ID)
	respond.JSON(c, http.StatusCreated, snap)
}

func (h *Handler) getAssessment(c *gin.Context) {
	c.Set("assessmentId", c.Param("id"))
	snap, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondEngineError(c, err)
		return
	}
	respond.OK(c, snap)
}

func (h *Handler) updateProfile(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	profile, err := req.toProfile()
	if err != nil {
		respondEngineError(c, err)
		return
	}

	c.Set("assessmentId", c.Param("id"))
	snap, err := h.Svc.UpdateProfile(c.Request.Context(), c.Param("id"), profile)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	respond.OK(c, snap)
}

func (h *Handler) updateSelection(c *gin.Context) {
	var req selectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	c.Set("assessmentId", c.Param("id"))
	snap, err := h.Svc.UpdateSelection(c.Request.Context(), c.Param("id"), req.Tools)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	respond.OK(c, snap)
}

func (h *Handler) deleteAssessment(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondEngineError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) exportReport(c *gin.Context) {
	c.Set("assessmentId", c.Param("id"))
	snap, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondEngineError(c, err)
		return
	}

	c.Header("Content-Type", "text/markdown; charset=utf-8")
	c.Status(http.StatusOK)
	if err := report.WriteMarkdown(c.Writer, toReportData(snap)); err != nil {
		// Headers are already out; log and give up on this response.
		_ = c.Error(err)
	}
}

func toReportData(snap Snapshot) report.Data {
	return report.Data{
		Profile:         snap.Profile,
		Selection:       snap.Selection,
		Scores:          snap.Scores,
		Gaps:            snap.Gaps,
		Recommendations: snap.Recommendations,
		GeneratedAt:     snap.UpdatedAt,
	}
}

func respondEngineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, assessment.ErrInvalidWeight):
		respond.Error(c, http.StatusBadRequest, "validation_error", "weights must not be negative", nil)
	case errors.Is(err, assessment.ErrInvalidProfileField):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, catalog.ErrToolNotFound):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "assessment not found", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "assessment failed", nil)
	}
}
