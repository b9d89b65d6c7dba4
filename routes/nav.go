package routes

import (
	"github.com/dawar-shafaque/restaurant-application/models"
	"github.com/dawar-shafaque/restaurant-application/session"
)

// UI route paths, mirrored from the client pages.
const (
	PathLanding           = "/"
	PathLogin             = "/login"
	PathSignup            = "/signup"
	PathBookTable         = "/bookTable"
	PathReservation       = "/reservation"
	PathMyProfile         = "/profile"
	PathWaiterReservation = "/waiter-reservation"
	PathViewMenu          = "/view-menu"
)

// NavLink is one visible navigation entry.
type NavLink struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// VisibleRoutes derives the navigation purely from the session: anonymous
// visitors see the landing and booking pages, waiters see the staff
// dashboard and menu, every other authenticated role sees the customer set.
// A synchronous decision from the session fields; no state, no network.
func VisibleRoutes(sess *session.Session) []NavLink {
	if sess == nil || !sess.IsAuthenticated() {
		return []NavLink{
			{Name: "Main Page", Path: PathLanding},
			{Name: "Book a Table", Path: PathBookTable},
		}
	}
	switch sess.Role {
	case models.RoleWaiter:
		return []NavLink{
			{Name: "Reservation", Path: PathWaiterReservation},
			{Name: "Menu", Path: PathViewMenu},
		}
	case models.RoleAdmin, models.RoleCustomer:
		return []NavLink{
			{Name: "Main Page", Path: PathLanding},
			{Name: "Book a Table", Path: PathBookTable},
			{Name: "Reservation", Path: PathReservation},
		}
	default:
		return []NavLink{
			{Name: "Main Page", Path: PathLanding},
		}
	}
}
