package waiter

import (
	"context"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/dawar-shafaque/restaurant-application/api"
	"github.com/dawar-shafaque/restaurant-application/models"
	"github.com/dawar-shafaque/restaurant-application/session"
)

// Search lists reservations matching the dashboard filter, sorted by date
// ascending.
func (s *DefaultWaiterService) Search(ctx context.Context, sess session.Session, f Filter) ([]models.WaiterReservation, error) {
	params := url.Values{}
	params.Set("date", f.Date)
	params.Set("time", f.Time)
	params.Set("tableNumber", f.TableNumber)
	searchURL := s.Endpoints.Reservations + "?" + params.Encode()

	var reservations []models.WaiterReservation
	if err := s.Client.DoJSON(ctx, http.MethodGet, searchURL, sess.Token, nil, &reservations); err != nil {
		return nil, err
	}
	sort.SliceStable(reservations, func(i, j int) bool {
		return reservations[i].Date < reservations[j].Date
	})
	return reservations, nil
}

// Cancel deletes a reservation from the staff view. This endpoint tends to
// answer in plain text; the message is surfaced verbatim.
func (s *DefaultWaiterService) Cancel(ctx context.Context, sess session.Session, id string) (string, error) {
	return s.Client.DoMessage(ctx, http.MethodDelete, api.Join(s.Endpoints.Reservations, id), sess.Token, nil)
}

// Postpone moves a reservation to a new time range.
func (s *DefaultWaiterService) Postpone(ctx context.Context, sess session.Session, id string, req EditRequest) (string, error) {
	return s.Client.DoMessage(ctx, http.MethodPatch, api.Join(s.Endpoints.Reservations, id), sess.Token, req)
}

// CreateBooking books a table on a customer's or visitor's behalf.
func (s *DefaultWaiterService) CreateBooking(ctx context.Context, sess session.Session, req BookingRequest) (string, error) {
	return s.Client.DoMessage(ctx, http.MethodPost, s.Endpoints.WaiterBooking, sess.Token, req)
}

// SearchCustomers looks up registered customers by partial name. Queries
// under two trimmed characters resolve to an empty result without a call.
func (s *DefaultWaiterService) SearchCustomers(ctx context.Context, sess session.Session, name string) ([]string, error) {
	if len(strings.TrimSpace(name)) < 2 {
		return nil, nil
	}
	searchURL := s.Endpoints.Customers + "?name=" + url.QueryEscape(name)
	var customers []string
	if err := s.Client.DoJSON(ctx, http.MethodGet, searchURL, sess.Token, nil, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}
