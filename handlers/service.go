package handlers

import (
	"net/http"
	"strconv"

	serviceRepo "nearaid/database/repository/service"
	"nearaid/models"
	"nearaid/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ServiceHandler exposes the service directory endpoints.
type ServiceHandler struct {
	Repo serviceRepo.ServiceRepository
}

// NewServiceHandler creates a ServiceHandler backed by the given repository.
func NewServiceHandler(repo serviceRepo.ServiceRepository) *ServiceHandler {
	return &ServiceHandler{Repo: repo}
}

// AddServiceHandler inserts a single service record.
func (h *ServiceHandler) AddServiceHandler(c *gin.Context) {
	logger := getLogger(c)
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	if err := svc.Validate(); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid service record", err.Error())
		return
	}
	if err := h.Repo.Create(c.Request.Context(), &svc); err != nil {
		logger.Error("Failed to create service", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to add service", "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Service added successfully.", "id": svc.ID})
}

// ListServicesHandler returns a page of services with an optional exact
// type filter.
func (h *ServiceHandler) ListServicesHandler(c *gin.Context) {
	logger := getLogger(c)

	offset, err := strconv.ParseInt(c.DefaultQuery("offset", "0"), 10, 64)
	if err != nil || offset < 0 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid offset", "offset must be a non-negative integer")
		return
	}
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "100"), 10, 64)
	if err != nil || limit < 1 || limit > 500 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid limit", "limit must be between 1 and 500")
		return
	}

	filter := serviceRepo.ListFilter{
		Offset: offset,
		Limit:  limit,
		Type:   c.Query("type"),
	}
	services, total, err := h.Repo.GetAll(c.Request.Context(), filter)
	if err != nil {
		logger.Error("Failed to retrieve services", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to get services", "")
		return
	}
	if services == nil {
		services = []models.Service{}
	}

	c.JSON(http.StatusOK, gin.H{
		"pagination": gin.H{
			"total":    total,
			"offset":   offset,
			"limit":    limit,
			"has_more": offset+limit < total,
		},
		"services": services,
	})
}

// ListServiceTypesHandler returns the distinct service type labels.
func (h *ServiceHandler) ListServiceTypesHandler(c *gin.Context) {
	logger := getLogger(c)
	types, err := h.Repo.GetServiceTypes(c.Request.Context())
	if err != nil {
		logger.Error("Failed to retrieve service types", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to get service types", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"service_types": types})
}
