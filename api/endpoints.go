// Package api talks to the remote reservation REST API. It owns the endpoint
// registry and the JSON transport; it performs no retries, caching or circuit
// breaking, and holds no state beyond the configured URLs.
package api

import (
	"strings"

	"github.com/dawar-shafaque/restaurant-application/config"
)

// Endpoints resolves every named capability of the reservation API into an
// absolute URL: active topology base URL + configured path suffix.
type Endpoints struct {
	Signup            string
	Login             string
	Locations         string
	LocationsOptions  string
	PopularDishes     string
	Tables            string
	BookingClients    string
	Reservations      string
	DeleteReservation string
	Reviews           string
	Dishes            string
	UsersProfile      string
	Password          string
	Feedbacks         string
	Customers         string
	WaiterBooking     string
}

// ResolveEndpoints builds the registry from the loaded configuration.
func ResolveEndpoints() Endpoints {
	base := config.BaseURL()
	cfg := config.AppConfig
	return Endpoints{
		Signup:            base + cfg.SignupPath,
		Login:             base + cfg.LoginPath,
		Locations:         base + cfg.LocationsPath,
		LocationsOptions:  base + cfg.LocationsOptionsPath,
		PopularDishes:     base + cfg.PopularDishesPath,
		Tables:            base + cfg.TablesPath,
		BookingClients:    base + cfg.BookingClientsPath,
		Reservations:      base + cfg.ReservationsPath,
		DeleteReservation: base + cfg.DeleteReservationPath,
		Reviews:           base + cfg.ReviewsPath,
		Dishes:            base + cfg.DishesPath,
		UsersProfile:      base + cfg.UsersProfilePath,
		Password:          base + cfg.PasswordPath,
		Feedbacks:         base + cfg.FeedbacksPath,
		Customers:         base + cfg.CustomersPath,
		WaiterBooking:     base + cfg.WaiterBookingPath,
	}
}

// Join appends path segments to an endpoint URL.
func Join(endpoint string, parts ...string) string {
	var b strings.Builder
	b.WriteString(strings.TrimRight(endpoint, "/"))
	for _, p := range parts {
		b.WriteString("/")
		b.WriteString(strings.Trim(p, "/"))
	}
	return b.String()
}
