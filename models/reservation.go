package models

// ReservationStatus is the backend-owned lifecycle state of a reservation.
// Status is the single source of truth for which actions are offered; it is
// never derived from the reservation's date or time.
type ReservationStatus string

const (
	StatusReserved   ReservationStatus = "RESERVED"
	StatusInProgress ReservationStatus = "IN_PROGRESS"
	StatusFinished   ReservationStatus = "FINISHED"
	StatusCancelled  ReservationStatus = "CANCELLED"
)

// ReservationAction is a user-facing affordance on a reservation card.
type ReservationAction string

const (
	ActionEdit           ReservationAction = "edit"
	ActionCancel         ReservationAction = "cancel"
	ActionLeaveFeedback  ReservationAction = "leaveFeedback"
	ActionUpdateFeedback ReservationAction = "updateFeedback"
)

// Reservation is a customer's booking as returned by the reservation API.
type Reservation struct {
	ID              string            `json:"id"`
	LocationID      string            `json:"locationId"`
	LocationAddress string            `json:"locationAddress"`
	Date            string            `json:"date"`
	TimeFrom        string            `json:"timeFrom"`
	TimeTo          string            `json:"timeTo"`
	GuestsNumber    int               `json:"guestsNumber"`
	Status          ReservationStatus `json:"status"`
	WaiterEmail     string            `json:"waiterEmail"`
}

// Actions returns the affordances offered for the reservation's status.
// CANCELLED is terminal and offers nothing.
func (r Reservation) Actions() []ReservationAction {
	switch r.Status {
	case StatusReserved:
		return []ReservationAction{ActionCancel, ActionEdit}
	case StatusInProgress:
		return []ReservationAction{ActionLeaveFeedback}
	case StatusFinished:
		return []ReservationAction{ActionUpdateFeedback}
	default:
		return nil
	}
}

// WaiterReservation is the staff-view shape of a reservation.
type WaiterReservation struct {
	ReservationID string `json:"reservationId"`
	Location      string `json:"location"`
	TableNumber   string `json:"tableNumber"`
	Date          string `json:"date"`
	TimeSlot      string `json:"timeSlot"`
	TimeFrom      string `json:"timeFrom"`
	TimeTo        string `json:"timeTo"`
	CustomerName  string `json:"customerName"`
	GuestsNumber  int    `json:"guestsNumber"`
}

// Feedback is the one-to-one review attached to a reservation. Submitting it
// twice with different values overwrites: the backend treats it as an upsert.
type Feedback struct {
	ReservationID  string `json:"reservationId"`
	ServiceRating  int    `json:"serviceRating"`
	ServiceComment string `json:"serviceComment"`
	CuisineRating  int    `json:"cuisineRating"`
	CuisineComment string `json:"cuisineComment"`
}
