package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"ridepool/internal/handler"
	"ridepool/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	UserHandler   *handler.UserHandler
	MatchHandler  *handler.MatchHandler
	RideHandler   *handler.RideHandler
	DriverHandler *handler.DriverHandler
	RedisClient   *redis.Client
	NewRelicApp   *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	router.Use(middleware.IdempotencyMiddleware(deps.RedisClient))

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		// User routes.
		users := v1.Group("/users")
		{
			users.POST("/register", deps.UserHandler.Register)
			users.GET("", deps.UserHandler.GetAll)
			users.PUT("/:id/hobbies", deps.MatchHandler.StoreHobbies)
			users.GET("/:id/matches", deps.MatchHandler.GetBestMatches)
			users.POST("/:id/matches/refresh", deps.MatchHandler.RefreshMatches)
		}

		// Ride routes.
		rides := v1.Group("/rides")
		{
			rides.POST("", deps.RideHandler.CreateRide)
			rides.GET("", deps.RideHandler.GetAvailable)
			rides.GET("/:id", deps.RideHandler.GetRide)
			rides.POST("/:id/join", deps.RideHandler.JoinRide)
			rides.POST("/:id/arrival", deps.RideHandler.SetArrival)
			rides.POST("/:id/status", deps.RideHandler.UpdateStatus)
			rides.GET("/:id/route", deps.RideHandler.GetRoute)
			rides.POST("/:id/driver/location", deps.DriverHandler.UpdatePosition)
			rides.GET("/:id/driver/status", deps.DriverHandler.GetStatus)
		}
	}

	return router
}
