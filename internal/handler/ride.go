package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ridepool/internal/domain"
	"ridepool/internal/geo"
	"ridepool/internal/repository"
	"ridepool/internal/service"
)

// RideHandler handles HTTP requests for pooled rides.
type RideHandler struct {
	rideService  *service.RideService
	routeService *service.RouteService
	userRepo     repository.UserRepository
}

// NewRideHandler creates a new RideHandler.
func NewRideHandler(
	rideService *service.RideService,
	routeService *service.RouteService,
	userRepo repository.UserRepository,
) *RideHandler {
	return &RideHandler{
		rideService:  rideService,
		routeService: routeService,
		userRepo:     userRepo,
	}
}

// CreateRideRequest is the HTTP request body for creating a ride.
type CreateRideRequest struct {
	CreatorID  string  `json:"creator_id"`
	PickupLat  float64 `json:"pickup_lat"`
	PickupLng  float64 `json:"pickup_lng"`
	DropoffLat float64 `json:"dropoff_lat"`
	DropoffLng float64 `json:"dropoff_lng"`
	SeatsTotal int     `json:"seats_total"`
}

// JoinRideRequest is the HTTP request body for joining a ride.
type JoinRideRequest struct {
	UserID    string  `json:"user_id"`
	PickupLat float64 `json:"pickup_lat"`
	PickupLng float64 `json:"pickup_lng"`
	SeatCount int     `json:"seat_count"`
}

// ArrivalRequest is the HTTP request body for updating arrival status.
type ArrivalRequest struct {
	UserID     string `json:"user_id"`
	HasArrived bool   `json:"has_arrived"`
}

// UpdateStatusRequest is the HTTP request body for updating ride status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// RideResponse is the HTTP response for ride data.
type RideResponse struct {
	ID         string  `json:"id"`
	CreatorID  string  `json:"creator_id"`
	PickupLat  float64 `json:"pickup_lat"`
	PickupLng  float64 `json:"pickup_lng"`
	DropoffLat float64 `json:"dropoff_lat"`
	DropoffLng float64 `json:"dropoff_lng"`
	Sector     string  `json:"sector"`
	SeatsTotal int     `json:"seats_total"`
	Status     string  `json:"status"`
}

// RouteStopResponse is one ordered pickup in a route response.
type RouteStopResponse struct {
	UserID     string  `json:"user_id"`
	Name       string  `json:"name"`
	PickupLat  float64 `json:"pickup_lat"`
	PickupLng  float64 `json:"pickup_lng"`
	HasArrived bool    `json:"has_arrived"`
}

// CreateRide handles POST /v1/rides
func (h *RideHandler) CreateRide(c *gin.Context) {
	var req CreateRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	ride, err := h.rideService.CreateRide(c.Request.Context(), service.CreateRideRequest{
		CreatorID:  req.CreatorID,
		Pickup:     geo.Point{Lat: req.PickupLat, Lng: req.PickupLng},
		Dropoff:    geo.Point{Lat: req.DropoffLat, Lng: req.DropoffLng},
		SeatsTotal: req.SeatsTotal,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toRideResponse(ride))
}

// GetRide handles GET /v1/rides/:id
func (h *RideHandler) GetRide(c *gin.Context) {
	ride, err := h.rideService.GetRide(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toRideResponse(ride))
}

// GetAvailable handles GET /v1/rides?sector=G8
func (h *RideHandler) GetAvailable(c *gin.Context) {
	rides, err := h.rideService.GetAvailableRides(c.Request.Context(), c.Query("sector"))
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]RideResponse, 0, len(rides))
	for _, ride := range rides {
		response = append(response, toRideResponse(ride))
	}

	respondJSON(c, http.StatusOK, response)
}

// JoinRide handles POST /v1/rides/:id/join
func (h *RideHandler) JoinRide(c *gin.Context) {
	var req JoinRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	passenger, err := h.rideService.JoinRide(c.Request.Context(), service.JoinRideRequest{
		RideID:    c.Param("id"),
		UserID:    req.UserID,
		Pickup:    geo.Point{Lat: req.PickupLat, Lng: req.PickupLng},
		SeatCount: req.SeatCount,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, gin.H{
		"ride_id":    passenger.RideID,
		"user_id":    passenger.UserID,
		"seat_count": passenger.SeatCount,
	})
}

// SetArrival handles POST /v1/rides/:id/arrival
func (h *RideHandler) SetArrival(c *gin.Context) {
	var req ArrivalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.rideService.SetArrival(c.Request.Context(), c.Param("id"), req.UserID, req.HasArrived); err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, gin.H{"message": "arrival status updated"})
}

// UpdateStatus handles POST /v1/rides/:id/status
func (h *RideHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.rideService.UpdateStatus(c.Request.Context(), c.Param("id"), domain.RideStatus(req.Status)); err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, gin.H{"message": "ride status updated"})
}

// GetRoute handles GET /v1/rides/:id/route?lat=33.69&lng=73.05
// The query point anchors the pickup ordering, typically the driver's
// current position.
func (h *RideHandler) GetRoute(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "lat and lng query params required"})
		return
	}

	ordered, err := h.routeService.OrderRoute(c.Request.Context(), c.Param("id"), geo.Point{Lat: lat, Lng: lng})
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]RouteStopResponse, 0, len(ordered))
	for _, p := range ordered {
		name := "Unknown"
		if user, err := h.userRepo.GetByID(c.Request.Context(), p.UserID); err == nil {
			name = user.Name
		}
		response = append(response, RouteStopResponse{
			UserID:     p.UserID,
			Name:       name,
			PickupLat:  p.Pickup.Lat,
			PickupLng:  p.Pickup.Lng,
			HasArrived: p.HasArrived,
		})
	}

	respondJSON(c, http.StatusOK, response)
}

func toRideResponse(ride *domain.Ride) RideResponse {
	return RideResponse{
		ID:         ride.ID,
		CreatorID:  ride.CreatorID,
		PickupLat:  ride.Pickup.Lat,
		PickupLng:  ride.Pickup.Lng,
		DropoffLat: ride.Dropoff.Lat,
		DropoffLng: ride.Dropoff.Lng,
		Sector:     ride.Sector,
		SeatsTotal: ride.SeatsTotal,
		Status:     string(ride.Status),
	}
}
