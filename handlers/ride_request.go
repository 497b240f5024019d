package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/AyushDadhich07/rider/config"
	"github.com/AyushDadhich07/rider/middleware"
	"github.com/AyushDadhich07/rider/models"
	"github.com/AyushDadhich07/rider/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// recentLimit bounds the recent list
const recentLimit = 10

type CreateRideRequestRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
	Notes       string `json:"notes"`
}

type RideRequestHandler struct {
	store *store.RideRequestStore
}

func NewRideRequestHandler(s *store.RideRequestStore) *RideRequestHandler {
	return &RideRequestHandler{store: s}
}

// CreateRideRequest submits a new ride request to the board
func (h *RideRequestHandler) CreateRideRequest(c *gin.Context) {
	var req CreateRideRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	created, err := h.store.Create(store.CreateRideRequestInput{
		Name:        req.Name,
		Phone:       req.Phone,
		Destination: req.Destination,
		Date:        req.Date,
		Notes:       req.Notes,
	})
	if err != nil {
		var verr *store.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"message": verr.Error()})
			return
		}
		h.serverError(c, "Error creating ride request", err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListRecentRideRequests returns the 10 most recently dated requests
func (h *RideRequestHandler) ListRecentRideRequests(c *gin.Context) {
	requests, err := h.store.ListRecent(recentLimit)
	if err != nil {
		h.serverError(c, "Error fetching ride requests", err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

// SearchRideRequests filters by destination and/or calendar day (UTC)
func (h *RideRequestHandler) SearchRideRequests(c *gin.Context) {
	var filters store.SearchFilters

	if destination := c.Query("destination"); destination != "" {
		// unknown values are passed through and simply match nothing
		filters.Destination = models.Destination(destination)
	}
	if date := c.Query("date"); date != "" {
		day, err := store.ParseDay(date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "date must be a calendar date (YYYY-MM-DD)"})
			return
		}
		filters.Day = &day
	}

	requests, err := h.store.Search(filters)
	if err != nil {
		h.serverError(c, "Error searching ride requests", err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

// GetRideRequest returns the full record, including phone and notes
func (h *RideRequestHandler) GetRideRequest(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Ride request not found"})
		return
	}

	request, err := h.store.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Ride request not found"})
			return
		}
		h.serverError(c, "Error fetching ride details", err)
		return
	}

	c.JSON(http.StatusOK, request)
}

func (h *RideRequestHandler) serverError(c *gin.Context, message string, err error) {
	config.Logger.Error(message,
		zap.Error(err),
		zap.String("request_id", middleware.GetRequestID(c)),
		zap.String("path", c.FullPath()),
	)
	c.JSON(http.StatusInternalServerError, gin.H{"message": message, "error": err.Error()})
}
