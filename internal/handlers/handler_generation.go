package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

type generationHandler struct {
	generationService portssvc.MonthlyGenerationSvc
}

// RegisterGenerationRoutes registers the generation trigger.
func RegisterGenerationRoutes(rg *gin.RouterGroup, generationService portssvc.MonthlyGenerationSvc) {
	RegisterValidators()
	h := &generationHandler{generationService: generationService}

	rg.POST("/generations", h.generateMonth)
}

// generateMonth godoc
// @Summary Generate a month's transactions
// @Description Materializes one transaction per obligation active in the month. Safe to repeat.
// @Tags generations
// @Accept  json
// @Produce  json
// @Param   request body dto.GenerateMonthRequest true "Target month"
// @Success 200 {object} dto.GenerationReportResponse
// @Failure 400 {object} map[string]string "Invalid month"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate transactions"
// @Security BearerAuth
// @Router /generations [post]
func (h *generationHandler) generateMonth(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.GenerateMonthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for GenerateMonth", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	ownerID, ok := requireUserID(c)
	if !ok {
		return
	}

	report, err := h.generationService.GenerateForMonth(c.Request.Context(), ownerID, req.Month)
	if err != nil {
		respondWithError(c, err, "Failed to generate transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ToGenerationReportResponse(report))
}
