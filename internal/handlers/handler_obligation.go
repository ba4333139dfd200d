package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// obligationHandler handles HTTP requests related to recurring obligations.
type obligationHandler struct {
	obligationService portssvc.ObligationSvcFacade
	clock             func() time.Time
}

func newObligationHandler(obligationService portssvc.ObligationSvcFacade, clock func() time.Time) *obligationHandler {
	return &obligationHandler{
		obligationService: obligationService,
		clock:             clock,
	}
}

// RegisterObligationRoutes registers obligation routes. clock decides the current month for edits.
func RegisterObligationRoutes(rg *gin.RouterGroup, obligationService portssvc.ObligationSvcFacade, clock func() time.Time) {
	RegisterValidators()
	h := newObligationHandler(obligationService, clock)

	obligations := rg.Group("/obligations")
	{
		obligations.POST("", h.createObligation)
		obligations.GET("", h.listObligations)
		obligations.GET("/:obligationID", h.getObligation)
		obligations.GET("/:obligationID/history", h.getObligationHistory)
		obligations.PATCH("/:obligationID", h.updateObligation)
		obligations.DELETE("/:obligationID", h.closeObligation)
	}
}

func (h *obligationHandler) currentMonth() domain.Month {
	return domain.MonthOf(h.clock().UTC())
}

// createObligation godoc
// @Summary Create a recurring obligation
// @Description Creates a recurring income or expense. activeFromMonth defaults to the current month.
// @Tags obligations
// @Accept  json
// @Produce  json
// @Param   obligation body dto.CreateObligationRequest true "Obligation details"
// @Success 201 {object} dto.ObligationResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create obligation"
// @Security BearerAuth
// @Router /obligations [post]
func (h *obligationHandler) createObligation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateObligationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateObligation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	ownerID, ok := requireUserID(c)
	if !ok {
		return
	}

	obligation, err := h.obligationService.CreateObligation(c.Request.Context(), ownerID, req, h.currentMonth())
	if err != nil {
		respondWithError(c, err, "Failed to create obligation")
		return
	}

	c.JSON(http.StatusCreated, dto.ToObligationResponse(obligation))
}

// listObligations godoc
// @Summary List recurring obligations
// @Description Lists every obligation version of the caller, optionally only those active in a month
// @Tags obligations
// @Produce  json
// @Param   activeIn query string false "Month filter (YYYY-MM)"
// @Success 200 {object} dto.ListObligationsResponse
// @Failure 400 {object} map[string]string "Invalid month"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list obligations"
// @Security BearerAuth
// @Router /obligations [get]
func (h *obligationHandler) listObligations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListObligationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListObligations", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	ownerID, ok := requireUserID(c)
	if !ok {
		return
	}

	obligations, err := h.obligationService.ListObligations(c.Request.Context(), ownerID, params.ActiveIn)
	if err != nil {
		respondWithError(c, err, "Failed to list obligations")
		return
	}

	c.JSON(http.StatusOK, dto.ToListObligationsResponse(obligations))
}

// getObligation godoc
// @Summary Get a recurring obligation
// @Tags obligations
// @Produce  json
// @Param   obligationID path string true "Obligation ID"
// @Success 200 {object} dto.ObligationResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Obligation not found"
// @Failure 500 {object} map[string]string "Failed to retrieve obligation"
// @Security BearerAuth
// @Router /obligations/{obligationID} [get]
func (h *obligationHandler) getObligation(c *gin.Context) {
	ownerID, ok := requireUserID(c)
	if !ok {
		return
	}

	obligation, err := h.obligationService.GetObligation(c.Request.Context(), c.Param("obligationID"), ownerID)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve obligation")
		return
	}

	c.JSON(http.StatusOK, dto.ToObligationResponse(obligation))
}

// getObligationHistory godoc
// @Summary List every version of an obligation
// @Description Returns all versions sharing the obligation's lineage, oldest first
// @Tags obligations
// @Produce  json
// @Param   obligationID path string true "Obligation ID"
// @Success 200 {object} dto.ListObligationsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Obligation not found"
// @Failure 500 {object} map[string]string "Failed to retrieve obligation history"
// @Security BearerAuth
// @Router /obligations/{obligationID}/history [get]
func (h *obligationHandler) getObligationHistory(c *gin.Context) {
	ownerID, ok := requireUserID(c)
	if !ok {
		return
	}

	history, err := h.obligationService.GetObligationHistory(c.Request.Context(), c.Param("obligationID"), ownerID)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve obligation history")
		return
	}

	c.JSON(http.StatusOK, dto.ToListObligationsResponse(history))
}

// updateObligation godoc
// @Summary Update a recurring obligation
// @Description Changing an open obligation closes it and returns the version that replaces it
// @Tags obligations
// @Accept  json
// @Produce  json
// @Param   obligationID path string true "Obligation ID"
// @Param   obligation body dto.UpdateObligationRequest true "Fields to change"
// @Success 200 {object} dto.ObligationResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Obligation not found"
// @Failure 500 {object} map[string]string "Failed to update obligation"
// @Security BearerAuth
// @Router /obligations/{obligationID} [patch]
func (h *obligationHandler) updateObligation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateObligationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateObligation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	ownerID, ok := requireUserID(c)
	if !ok {
		return
	}

	obligation, err := h.obligationService.UpdateObligation(c.Request.Context(), c.Param("obligationID"), ownerID, req, h.currentMonth())
	if err != nil {
		respondWithError(c, err, "Failed to update obligation")
		return
	}

	c.JSON(http.StatusOK, dto.ToObligationResponse(obligation))
}

// closeObligation godoc
// @Summary Close or delete a recurring obligation
// @Description An open obligation is closed at the end of last month; a closed one is deleted
// @Tags obligations
// @Produce  json
// @Param   obligationID path string true "Obligation ID"
// @Success 200 {object} dto.CloseObligationResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Obligation not found"
// @Failure 500 {object} map[string]string "Failed to close obligation"
// @Security BearerAuth
// @Router /obligations/{obligationID} [delete]
func (h *obligationHandler) closeObligation(c *gin.Context) {
	ownerID, ok := requireUserID(c)
	if !ok {
		return
	}

	obligationID := c.Param("obligationID")
	outcome, err := h.obligationService.CloseOrDeleteObligation(c.Request.Context(), obligationID, ownerID, h.currentMonth())
	if err != nil {
		respondWithError(c, err, "Failed to close obligation")
		return
	}

	c.JSON(http.StatusOK, dto.CloseObligationResponse{ObligationID: obligationID, Outcome: outcome})
}
