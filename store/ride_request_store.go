package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/AyushDadhich07/rider/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a lookup by id misses
var ErrNotFound = errors.New("ride request not found")

// ValidationError reports which field of a creation payload was rejected
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + " " + e.Reason
}

// dateLayouts accepted on creation. The second and third cover what an
// HTML datetime-local input submits; all are interpreted as UTC.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDate parses a ride request date-time in UTC
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

// ParseDay parses a calendar date (YYYY-MM-DD) as UTC midnight
func ParseDay(value string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", value, time.UTC)
}

// CreateRideRequestInput carries the raw creation payload; the date is kept
// as a string so the store owns both parsing and validation.
type CreateRideRequestInput struct {
	Name        string
	Phone       string
	Destination string
	Date        string
	Notes       string
}

// SearchFilters combine with logical AND; zero values mean "no filter".
// Day must be a UTC midnight and selects the 24 hours starting there.
type SearchFilters struct {
	Destination models.Destination
	Day         *time.Time
}

// RideRequestStore owns all persisted ride request records
type RideRequestStore struct {
	db *gorm.DB
}

func NewRideRequestStore(db *gorm.DB) *RideRequestStore {
	return &RideRequestStore{db: db}
}

// Create validates the payload and persists a new ride request.
// Nothing is persisted when any constraint fails.
func (s *RideRequestStore) Create(input CreateRideRequestInput) (*models.RideRequest, error) {
	if input.Name == "" {
		return nil, &ValidationError{Field: "name", Reason: "is required"}
	}
	if input.Phone == "" {
		return nil, &ValidationError{Field: "phone", Reason: "is required"}
	}
	if input.Destination == "" {
		return nil, &ValidationError{Field: "destination", Reason: "is required"}
	}
	destination := models.Destination(input.Destination)
	if !destination.Valid() {
		return nil, &ValidationError{Field: "destination", Reason: "must be 'airport' or 'railway station'"}
	}
	if input.Date == "" {
		return nil, &ValidationError{Field: "date", Reason: "is required"}
	}
	date, err := ParseDate(input.Date)
	if err != nil {
		return nil, &ValidationError{Field: "date", Reason: "is not a valid date-time"}
	}

	request := models.RideRequest{
		Name:        input.Name,
		Phone:       input.Phone,
		Destination: destination,
		Date:        date,
		Notes:       input.Notes,
	}
	if err := s.db.Create(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

// ListRecent returns up to limit requests, newest date first, projected to
// the summary fields. Id breaks date ties so the order is deterministic.
func (s *RideRequestStore) ListRecent(limit int) ([]models.RideRequestSummary, error) {
	summaries := []models.RideRequestSummary{}
	err := s.db.Model(&models.RideRequest{}).
		Select("id, name, destination, date").
		Order("date desc, id desc").
		Limit(limit).
		Find(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

// Search returns all requests matching the filters, oldest date first
func (s *RideRequestStore) Search(filters SearchFilters) ([]models.RideRequestSummary, error) {
	query := s.db.Model(&models.RideRequest{}).Select("id, name, destination, date")

	if filters.Destination != "" {
		query = query.Where("destination = ?", filters.Destination)
	}
	if filters.Day != nil {
		start := *filters.Day
		query = query.Where("date >= ? AND date < ?", start, start.AddDate(0, 0, 1))
	}

	summaries := []models.RideRequestSummary{}
	if err := query.Order("date asc, id asc").Find(&summaries).Error; err != nil {
		return nil, err
	}
	return summaries, nil
}

// GetByID returns the full record, including phone and notes
func (s *RideRequestStore) GetByID(id uint) (*models.RideRequest, error) {
	var request models.RideRequest
	if err := s.db.First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &request, nil
}
