package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ridepool/internal/service"
)

// DriverHandler handles HTTP requests for live driver positions.
type DriverHandler struct {
	driverService *service.DriverService
}

// NewDriverHandler creates a new DriverHandler.
func NewDriverHandler(driverService *service.DriverService) *DriverHandler {
	return &DriverHandler{driverService: driverService}
}

// UpdatePositionRequest is the HTTP request body for a driver position
// update. Location accepts either {lat, lng} or {latitude, longitude}.
type UpdatePositionRequest struct {
	Location map[string]float64 `json:"location"`
}

// DriverStatusResponse is the HTTP response for driver status.
type DriverStatusResponse struct {
	RideID     string   `json:"ride_id"`
	Lat        *float64 `json:"lat"`
	Lng        *float64 `json:"lng"`
	EtaMinutes *int     `json:"eta_minutes"` // null when unavailable
}

// UpdatePosition handles POST /v1/rides/:id/driver/location
func (h *DriverHandler) UpdatePosition(c *gin.Context) {
	var req UpdatePositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.driverService.UpdatePosition(c.Request.Context(), c.Param("id"), req.Location); err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, gin.H{"message": "location updated"})
}

// GetStatus handles GET /v1/rides/:id/driver/status
func (h *DriverHandler) GetStatus(c *gin.Context) {
	rideID := c.Param("id")

	status, err := h.driverService.GetStatus(c.Request.Context(), rideID)
	if err != nil {
		respondError(c, err)
		return
	}

	response := DriverStatusResponse{
		RideID:     rideID,
		EtaMinutes: status.EtaMinutes,
	}
	if status.Position != nil {
		response.Lat = &status.Position.Lat
		response.Lng = &status.Position.Lng
	}

	respondJSON(c, http.StatusOK, response)
}
