package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ridepool/internal/domain"
	"ridepool/internal/repository"
	"ridepool/internal/service"
)

// MatchHandler handles HTTP requests for interest profiles and companion
// matches.
type MatchHandler struct {
	interestService *service.InterestService
	userRepo        repository.UserRepository
}

// NewMatchHandler creates a new MatchHandler.
func NewMatchHandler(interestService *service.InterestService, userRepo repository.UserRepository) *MatchHandler {
	return &MatchHandler{
		interestService: interestService,
		userRepo:        userRepo,
	}
}

// StoreHobbiesRequest is the HTTP request body for storing hobbies.
type StoreHobbiesRequest struct {
	Description string `json:"description"`
}

// StoreHobbiesResponse is the HTTP response for storing hobbies.
type StoreHobbiesResponse struct {
	UserID   string   `json:"user_id"`
	Keywords []string `json:"keywords"`
}

// MatchEntryResponse is one ranked companion in a match list response.
type MatchEntryResponse struct {
	UserID string   `json:"user_id"`
	Name   string   `json:"name"`
	Score  float64  `json:"score"`
	Shared []string `json:"shared_interests"`
}

// StoreHobbies handles PUT /v1/users/:id/hobbies
func (h *MatchHandler) StoreHobbies(c *gin.Context) {
	userID := c.Param("id")

	var req StoreHobbiesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	keywords, err := h.interestService.StoreHobbies(c.Request.Context(), userID, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, StoreHobbiesResponse{
		UserID:   userID,
		Keywords: keywords,
	})
}

// GetBestMatches handles GET /v1/users/:id/matches
func (h *MatchHandler) GetBestMatches(c *gin.Context) {
	userID := c.Param("id")

	entries, err := h.interestService.GetBestMatches(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, h.toResponse(c, entries))
}

// RefreshMatches handles POST /v1/users/:id/matches/refresh
func (h *MatchHandler) RefreshMatches(c *gin.Context) {
	userID := c.Param("id")

	entries, err := h.interestService.ComputeMatches(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, h.toResponse(c, entries))
}

func (h *MatchHandler) toResponse(c *gin.Context, entries []domain.MatchEntry) []MatchEntryResponse {
	response := make([]MatchEntryResponse, 0, len(entries))
	for _, entry := range entries {
		name := "Unknown"
		if user, err := h.userRepo.GetByID(c.Request.Context(), entry.UserID); err == nil {
			name = user.Name
		}
		response = append(response, MatchEntryResponse{
			UserID: entry.UserID,
			Name:   name,
			Score:  entry.Score,
			Shared: entry.Shared,
		})
	}
	return response
}
