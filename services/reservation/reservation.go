package reservation

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sort"

	"github.com/dawar-shafaque/restaurant-application/api"
	"github.com/dawar-shafaque/restaurant-application/models"
	"github.com/dawar-shafaque/restaurant-application/session"
)

// ErrGuestsTooFew is the only client-side check on edits; everything else is
// the backend's responsibility.
var ErrGuestsTooFew = errors.New("Guests must be at least 1")

// List fetches the user's reservations and sorts them by date ascending,
// breaking ties on timeFrom. The backend answers with either a bare array or
// a {data:[...]} envelope; both are tolerated.
func (s *DefaultReservationService) List(ctx context.Context, sess session.Session) ([]models.Reservation, error) {
	var raw json.RawMessage
	if err := s.Client.DoJSON(ctx, http.MethodGet, s.Endpoints.Reservations, sess.Token, nil, &raw); err != nil {
		return nil, err
	}
	reservations, err := decodeList(raw)
	if err != nil {
		return nil, err
	}
	SortReservations(reservations)
	return reservations, nil
}

// SortReservations orders by (date ascending, timeFrom ascending); the
// secondary key is consulted only when dates are equal.
func SortReservations(reservations []models.Reservation) {
	sort.SliceStable(reservations, func(i, j int) bool {
		if reservations[i].Date != reservations[j].Date {
			return reservations[i].Date < reservations[j].Date
		}
		return reservations[i].TimeFrom < reservations[j].TimeFrom
	})
}

// Edit PATCHes the reservation, then re-fetches the whole list so the
// displayed state always reflects server truth. On failure the original list
// stays untouched and the server's message is returned with the error.
func (s *DefaultReservationService) Edit(ctx context.Context, sess session.Session, id string, req EditRequest) ([]models.Reservation, string, error) {
	if req.GuestsNumber < 1 {
		return nil, "", ErrGuestsTooFew
	}
	msg, err := s.Client.DoMessage(ctx, http.MethodPatch, api.Join(s.Endpoints.Reservations, id), sess.Token, req)
	if err != nil {
		return nil, "", err
	}
	if msg == "" {
		msg = "Reservation updated successfully!"
	}
	list, err := s.List(ctx, sess)
	return list, msg, err
}

// Cancel DELETEs the reservation and re-fetches the list; a cancelled entry
// disappears by virtue of the re-fetch, never by local removal.
func (s *DefaultReservationService) Cancel(ctx context.Context, sess session.Session, id string) ([]models.Reservation, string, error) {
	msg, err := s.Client.DoMessage(ctx, http.MethodDelete, api.Join(s.Endpoints.DeleteReservation, id), sess.Token, nil)
	if err != nil {
		return nil, "", err
	}
	if msg == "" {
		msg = "Reservation Cancelled successfully!"
	}
	list, err := s.List(ctx, sess)
	return list, msg, err
}

// GetFeedback loads the feedback attached to a reservation when the editor
// opens. Missing fields default to zero values, matching an untouched form.
func (s *DefaultReservationService) GetFeedback(ctx context.Context, sess session.Session, reservationID string) (*models.Feedback, error) {
	var fb models.Feedback
	if err := s.Client.DoJSON(ctx, http.MethodGet, api.Join(s.Endpoints.Feedbacks, reservationID), sess.Token, nil, &fb); err != nil {
		return nil, err
	}
	fb.ReservationID = reservationID
	return &fb, nil
}

// SubmitFeedback creates or replaces the reservation's feedback. Calling it
// twice with different values overwrites.
func (s *DefaultReservationService) SubmitFeedback(ctx context.Context, sess session.Session, fb models.Feedback) (string, error) {
	return s.Client.DoMessage(ctx, http.MethodPost, s.Endpoints.Feedbacks, sess.Token, fb)
}

func decodeList(raw json.RawMessage) ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := json.Unmarshal(raw, &reservations); err == nil {
		return reservations, nil
	}
	var envelope struct {
		Data []models.Reservation `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}
