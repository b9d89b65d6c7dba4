package reservation

import (
	"context"

	"github.com/dawar-shafaque/restaurant-application/api"
	"github.com/dawar-shafaque/restaurant-application/models"
	"github.com/dawar-shafaque/restaurant-application/session"
)

// EditRequest is the only mutable part of a reservation: its time range and
// guest count. The date and table stay fixed.
type EditRequest struct {
	TimeFrom     string `json:"timeFrom"`
	TimeTo       string `json:"timeTo"`
	GuestsNumber int    `json:"guestsNumber"`
}

// ReservationService manages the authenticated user's reservation list.
// Every mutation triggers a full re-fetch of the list as the source of
// truth; nothing is patched locally.
type ReservationService interface {
	List(ctx context.Context, sess session.Session) ([]models.Reservation, error)
	Edit(ctx context.Context, sess session.Session, id string, req EditRequest) ([]models.Reservation, string, error)
	Cancel(ctx context.Context, sess session.Session, id string) ([]models.Reservation, string, error)
	GetFeedback(ctx context.Context, sess session.Session, reservationID string) (*models.Feedback, error)
	SubmitFeedback(ctx context.Context, sess session.Session, fb models.Feedback) (string, error)
}

// DefaultReservationService is the production implementation.
type DefaultReservationService struct {
	Client    *api.Client
	Endpoints api.Endpoints
}
