package handlers

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"nearaid/models"
	"nearaid/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// csvColumns are the headers a service upload must carry.
var csvColumns = []string{
	"name", "type", "location", "address", "mobile_no",
	"timings", "cost", "available", "latitude", "longitude", "contact",
}

// UploadServicesHandler ingests a CSV file of service records as a single
// all-or-nothing batch.
func (h *ServiceHandler) UploadServicesHandler(c *gin.Context) {
	logger := getLogger(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "CSV file is required", err.Error())
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Failed to open uploaded file", err.Error())
		return
	}
	defer file.Close()

	services, err := parseServicesCSV(file)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid CSV file", err.Error())
		return
	}

	if err := h.Repo.CreateMany(c.Request.Context(), services); err != nil {
		logger.Error("Failed to insert uploaded services", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to upload services", "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("%d services uploaded successfully.", len(services)),
	})
}

// parseServicesCSV reads a headed CSV into validated service records.
func parseServicesCSV(r io.Reader) ([]models.Service, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, col := range header {
		idx[strings.ToLower(strings.TrimSpace(col))] = i
	}
	for _, col := range csvColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("missing column %q", col)
		}
	}

	var services []models.Service
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		lat, err := strconv.ParseFloat(strings.TrimSpace(record[idx["latitude"]]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid latitude: %w", line, err)
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(record[idx["longitude"]]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid longitude: %w", line, err)
		}

		available := true
		if v := strings.TrimSpace(record[idx["available"]]); v != "" {
			if parsed, err := strconv.ParseBool(strings.ToLower(v)); err == nil {
				available = parsed
			}
		}

		svc := models.Service{
			Name:      strings.TrimSpace(record[idx["name"]]),
			Type:      strings.TrimSpace(record[idx["type"]]),
			Location:  strings.TrimSpace(record[idx["location"]]),
			Address:   strings.TrimSpace(record[idx["address"]]),
			MobileNo:  strings.TrimSpace(record[idx["mobile_no"]]),
			Timings:   strings.TrimSpace(record[idx["timings"]]),
			Cost:      strings.TrimSpace(record[idx["cost"]]),
			Contact:   strings.TrimSpace(record[idx["contact"]]),
			Latitude:  lat,
			Longitude: lon,
			Available: &available,
		}
		if err := svc.Validate(); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		services = append(services, svc)
	}

	return services, nil
}
