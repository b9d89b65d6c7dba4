package booking

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/dawar-shafaque/restaurant-application/models"
	"github.com/dawar-shafaque/restaurant-application/session"
)

// Guest counter bounds of the confirmation step.
const (
	MinGuests = 1
	MaxGuests = 10
)

// Field-specific validation messages; the search is rejected before any
// network call when one fires.
var (
	ErrLocationRequired = errors.New("Location is required")
	ErrDateRequired     = errors.New("Date is required")
	ErrGuestsRequired   = errors.New("Guests must be at least 1")
	ErrTimeRequired     = errors.New("Time is required")

	// ErrCapacityExceeded refuses submission when the guest count is above
	// the booked table's capacity. The server enforces the same constraint;
	// this guard only keeps the doomed request off the wire.
	ErrCapacityExceeded = errors.New("Number of guests exceeds table capacity.")
)

// FindTables validates the query, then searches available tables. The Tables
// store transitions loading synchronously; the settled response replaces the
// previous result set unless a newer search has started since.
func (s *DefaultBookingService) FindTables(ctx context.Context, q TableQuery) ([]models.Table, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	gen := s.Tables.Begin()

	params := url.Values{}
	params.Set("locationId", q.LocationID)
	params.Set("date", q.Date)
	params.Set("guests", strconv.Itoa(q.Guests))
	params.Set("time", q.Time)
	searchURL := s.Endpoints.Tables + "?" + params.Encode()

	var tables []models.Table
	if err := s.Client.DoJSON(ctx, http.MethodGet, searchURL, "", nil, &tables); err != nil {
		s.Tables.Fail(gen, err.Error())
		return nil, err
	}
	s.Tables.Resolve(gen, tables)
	return tables, nil
}

// ResetTables clears the search results, e.g. when the booking page unmounts.
func (s *DefaultBookingService) ResetTables() {
	s.Tables.Reset()
}

// Validate rejects the query when any of the four fields is missing, with a
// message naming the field.
func (q TableQuery) Validate() error {
	if strings.TrimSpace(q.LocationID) == "" {
		return ErrLocationRequired
	}
	if strings.TrimSpace(q.Date) == "" {
		return ErrDateRequired
	}
	if q.Guests < MinGuests {
		return ErrGuestsRequired
	}
	if strings.TrimSpace(q.Time) == "" {
		return ErrTimeRequired
	}
	return nil
}

// NewConfirmation opens the confirmation step for a chosen (table, slot)
// pair. The compound slot string splits on " - " into timeFrom and timeTo;
// the guest count is clamped into [MinGuests, MaxGuests].
func NewConfirmation(table models.Table, slot, date string, guests int) (Confirmation, error) {
	timeFrom, timeTo, err := SplitSlot(slot)
	if err != nil {
		return Confirmation{}, err
	}
	capacity, err := strconv.Atoi(strings.TrimSpace(table.GuestCapacity))
	if err != nil {
		return Confirmation{}, fmt.Errorf("table %s has malformed capacity %q", table.TableNumber, table.GuestCapacity)
	}
	if guests < MinGuests {
		guests = MinGuests
	}
	if guests > MaxGuests {
		guests = MaxGuests
	}
	return Confirmation{
		LocationID:      table.LocationID,
		LocationAddress: table.LocationAddress,
		TableNumber:     table.TableNumber,
		Date:            date,
		TimeSlot:        slot,
		TimeFrom:        timeFrom,
		TimeTo:          timeTo,
		Guests:          guests,
		GuestCapacity:   capacity,
	}, nil
}

// SplitSlot derives the time range from a compound slot string.
func SplitSlot(slot string) (timeFrom, timeTo string, err error) {
	parts := strings.Split(slot, " - ")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("malformed time slot %q", slot)
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), nil
}

// CapacityExceeded reports whether the submit action must be refused.
func (c Confirmation) CapacityExceeded() bool {
	return c.Guests > c.GuestCapacity
}

// CreateReservation submits the confirmation. The capacity guard fires
// before the network; success and failure both close the confirmation step,
// differing only in the returned notification message.
func (s *DefaultBookingService) CreateReservation(ctx context.Context, sess session.Session, conf Confirmation) (string, error) {
	if conf.CapacityExceeded() {
		return "", ErrCapacityExceeded
	}

	payload := map[string]any{
		"locationId":   conf.LocationID,
		"tableNumber":  conf.TableNumber,
		"date":         conf.Date,
		"guestsNumber": conf.Guests,
		"timeFrom":     conf.TimeFrom,
		"timeTo":       conf.TimeTo,
	}
	msg, err := s.Client.DoMessage(ctx, http.MethodPost, s.Endpoints.BookingClients, sess.Token, payload)
	if err != nil {
		return "", err
	}
	if msg == "" {
		msg = "Reservation made successfully!"
	}
	return msg, nil
}
