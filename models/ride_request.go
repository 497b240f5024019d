package models

import "time"

// Destination defines the allowed travel endpoints for a ride request
type Destination string

const (
	DestinationAirport        Destination = "airport"
	DestinationRailwayStation Destination = "railway station"
)

// Valid reports whether d is one of the two accepted destinations.
// The check lives here so it does not depend on the database's enum support.
func (d Destination) Valid() bool {
	return d == DestinationAirport || d == DestinationRailwayStation
}

// RideRequest is a user-submitted request for a shared ride.
// Records are append-only: created once, never updated or deleted.
type RideRequest struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	Name        string      `json:"name" gorm:"not null"`
	Phone       string      `json:"phone" gorm:"not null"`
	Destination Destination `json:"destination" gorm:"not null"`
	Date        time.Time   `json:"date" gorm:"not null;index"`
	Notes       string      `json:"notes"`
}

// RideRequestSummary is the projection returned by list and search:
// phone and notes stay private until a caller asks for the full record.
type RideRequestSummary struct {
	ID          uint        `json:"id"`
	Name        string      `json:"name"`
	Destination Destination `json:"destination"`
	Date        time.Time   `json:"date"`
}
