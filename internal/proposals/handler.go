package proposals

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rfp-backend/internal/shared/server/middleware"
	"rfp-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches proposal routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/proposals", h.create)
	rg.GET("/proposals", h.list)
	rg.GET("/proposals/:id", h.get)
	rg.GET("/proposals/:id/response", h.response)
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	proposal, err := h.Svc.Create(c.Request.Context(), userID, CreateInput{
		Title:      req.Title,
		Customer:   req.Customer,
		Industry:   req.Industry,
		Text:       req.Text,
		DocumentID: req.DocumentID,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", err.Error(), nil)
		default:
			// A pipeline failure still stores a failed proposal; point the
			// caller at it so the error message can be inspected.
			if proposal.ID != "" {
				c.Set("proposalId", proposal.ID)
				respond.Error(c, http.StatusInternalServerError, "config_error", err.Error(),
					gin.H{"proposalId": proposal.ID})
				return
			}
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create proposal", nil)
		}
		return
	}

	c.Set("proposalId", proposal.ID)
	respond.JSON(c, http.StatusCreated, toResponse(proposal))
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	proposal, err := h.Svc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "proposal not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch proposal", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(proposal))
}

// response serves the compiled response document as plain text.
func (h *Handler) response(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	proposal, err := h.Svc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "proposal not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch proposal", nil)
		}
		return
	}
	if proposal.Status != StatusCompleted || proposal.ResponseText == "" {
		respond.Error(c, http.StatusConflict, "not_ready", "proposal has no response document", nil)
		return
	}

	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(proposal.ResponseText))
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	limit := 20
	offset := 0

	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if limit > 50 {
		limit = 50
	}

	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	proposals, err := h.Svc.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list proposals", nil)
		return
	}

	resp := make([]ProposalSummary, 0, len(proposals))
	for _, p := range proposals {
		resp = append(resp, toSummary(p))
	}

	respond.JSON(c, http.StatusOK, resp)
}
