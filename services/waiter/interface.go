package waiter

import (
	"context"

	"github.com/dawar-shafaque/restaurant-application/api"
	"github.com/dawar-shafaque/restaurant-application/models"
	"github.com/dawar-shafaque/restaurant-application/session"
)

// Filter narrows the staff reservation dashboard by date, time and table.
type Filter struct {
	Date        string `form:"date" json:"date"`
	Time        string `form:"time" json:"time"`
	TableNumber string `form:"tableNumber" json:"tableNumber"`
}

// ClientType distinguishes walk-in visitors from registered customers on
// waiter-made bookings.
type ClientType string

const (
	ClientVisitor  ClientType = "VISITOR"
	ClientCustomer ClientType = "CUSTOMER"
)

// BookingRequest is a reservation created by a waiter on a customer's
// behalf. GuestsNumber travels as a string on this endpoint.
type BookingRequest struct {
	ClientType   ClientType `json:"clientType"`
	CustomerName string     `json:"customerName"`
	LocationID   string     `json:"locationId"`
	TableNumber  string     `json:"tableNumber"`
	Date         string     `json:"date"`
	TimeFrom     string     `json:"timeFrom"`
	TimeTo       string     `json:"timeTo"`
	GuestsNumber string     `json:"guestsNumber"`
}

// EditRequest mirrors the customer edit payload for postponing.
type EditRequest struct {
	TimeFrom     string `json:"timeFrom"`
	TimeTo       string `json:"timeTo"`
	GuestsNumber string `json:"guestsNumber"`
}

// WaiterService is the staff-facing reservation surface.
type WaiterService interface {
	Search(ctx context.Context, sess session.Session, f Filter) ([]models.WaiterReservation, error)
	Cancel(ctx context.Context, sess session.Session, id string) (string, error)
	Postpone(ctx context.Context, sess session.Session, id string, req EditRequest) (string, error)
	CreateBooking(ctx context.Context, sess session.Session, req BookingRequest) (string, error)
	SearchCustomers(ctx context.Context, sess session.Session, name string) ([]string, error)
}

// DefaultWaiterService is the production implementation.
type DefaultWaiterService struct {
	Client    *api.Client
	Endpoints api.Endpoints
}
