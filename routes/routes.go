package routes

import (
	"github.com/AyushDadhich07/rider/handlers"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, rideRequests *handlers.RideRequestHandler) {
	api := r.Group("/api")
	{
		// /search is registered before /:id; gin's router resolves the
		// static segment first either way, but the intent reads clearer
		api.POST("/ride-requests", rideRequests.CreateRideRequest)
		api.GET("/ride-requests", rideRequests.ListRecentRideRequests)
		api.GET("/ride-requests/search", rideRequests.SearchRideRequests)
		api.GET("/ride-requests/:id", rideRequests.GetRideRequest)
	}
}
