package handlers

import (
	"errors"
	"net/http"

	"nearaid/models"
	"nearaid/services/help"
	"nearaid/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HelpHandler exposes the help resolution endpoint.
type HelpHandler struct {
	Service help.HelpService
}

// NewHelpHandler creates a HelpHandler backed by the given service.
func NewHelpHandler(svc help.HelpService) *HelpHandler {
	return &HelpHandler{Service: svc}
}

// GetHelpHandler resolves a help request into nearby matching services.
func (h *HelpHandler) GetHelpHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.HelpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	resp, err := h.Service.Resolve(c.Request.Context(), req)
	if err != nil {
		var verr *help.ValidationError
		if errors.As(err, &verr) {
			utils.JSONError(c, http.StatusBadRequest, verr.Reason, "")
			return
		}
		logger.Error("Help resolution failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to resolve help request", "")
		return
	}

	c.JSON(http.StatusOK, resp)
}
