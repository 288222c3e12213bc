// internal/handlers/insight.go
package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/brewline/pos-backend/internal/services"
	"github.com/brewline/pos-backend/internal/utils"
)

type InsightHandler struct {
	insightService *services.InsightService
}

func NewInsightHandler(insightService *services.InsightService) *InsightHandler {
	return &InsightHandler{
		insightService: insightService,
	}
}

// POST /insights
func (h *InsightHandler) RequestInsight(c *gin.Context) {
	var req services.InsightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if strings.TrimSpace(req.Question) == "" {
		utils.BadRequestResponse(c, "Question must not be blank", nil)
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	// The request context carries through to the upstream call, so a
	// client that abandons the query cancels the in-flight request.
	insight, err := h.insightService.RequestInsight(c.Request.Context(), req.Question)
	if err != nil {
		if errors.Is(err, services.ErrUpstream) {
			utils.UpstreamErrorResponse(c, "Failed to get insights. The model may have returned an unexpected format.")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"insight": insight,
	})
}
