package analyses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobfit-backend/internal/llm"
	"jobfit-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the analyses service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze", h.analyze)
}

type analyzeRequest struct {
	JobDescription string `json:"jobDescription"`
	ResumeContent  string `json:"resumeContent"`
}

func (h *Handler) analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "Missing job description or resume content", nil)
		return
	}

	result, err := h.Svc.Analyze(c.Request.Context(), req.JobDescription, req.ResumeContent)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingInput):
			respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "Missing job description or resume content", nil)
		case errors.Is(err, ErrSchemaMismatch), errors.Is(err, llm.ErrEmptyResponse):
			respond.Error(c, http.StatusInternalServerError, ErrorCodeLLMSchemaMismatch,
				"AI returned invalid data during parsing or analysis. Please try again.", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal,
				"Failed to process analysis. "+err.Error(), nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"result": result})
}
