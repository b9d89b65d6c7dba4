package handlers

// HandlerBundle groups every handler the route registry wires up.
type HandlerBundle struct {
	Auth        *AuthHandler
	Booking     *BookingHandler
	Reservation *ReservationHandler
	Catalog     *CatalogHandler
	Profile     *ProfileHandler
	Waiter      *WaiterHandler
}
