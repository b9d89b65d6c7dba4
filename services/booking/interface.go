package booking

import (
	"context"

	"github.com/dawar-shafaque/restaurant-application/api"
	"github.com/dawar-shafaque/restaurant-application/models"
	"github.com/dawar-shafaque/restaurant-application/session"
	"github.com/dawar-shafaque/restaurant-application/store"
)

// TableQuery is the table search input. All four fields are required; a
// query with any missing never reaches the network.
type TableQuery struct {
	LocationID string `form:"locationId" json:"locationId"`
	Date       string `form:"date" json:"date"`
	Time       string `form:"time" json:"time"`
	Guests     int    `form:"guests" json:"guests"`
}

// Confirmation is the state of the reservation confirmation step: the chosen
// table and slot, the derived time range and the bounded guest counter.
type Confirmation struct {
	LocationID      string `json:"locationId"`
	LocationAddress string `json:"locationAddress"`
	TableNumber     string `json:"tableNumber"`
	Date            string `json:"date"`
	TimeSlot        string `json:"timeSlot"`
	TimeFrom        string `json:"timeFrom"`
	TimeTo          string `json:"timeTo"`
	Guests          int    `json:"guests"`
	GuestCapacity   int    `json:"guestCapacity"`
}

// BookingService drives the table search and reservation creation workflow.
type BookingService interface {
	FindTables(ctx context.Context, q TableQuery) ([]models.Table, error)
	ResetTables()
	CreateReservation(ctx context.Context, sess session.Session, conf Confirmation) (string, error)
}

// DefaultBookingService is the production implementation. It owns the Tables
// store slice; each search fully replaces the previous result set.
type DefaultBookingService struct {
	Client    *api.Client
	Endpoints api.Endpoints
	Tables    *store.Store[[]models.Table]
}
