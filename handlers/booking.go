package handlers

import (
	"net/http"

	"github.com/dawar-shafaque/restaurant-application/middleware"
	"github.com/dawar-shafaque/restaurant-application/services/booking"
	"github.com/dawar-shafaque/restaurant-application/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the table search and reservation creation workflow.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(service booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: service}
}

// FindTablesHandler handles GET /api/bookings/tables.
func (h *BookingHandler) FindTablesHandler(c *gin.Context) {
	var q booking.TableQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid table search query", err.Error())
		return
	}
	tables, err := h.Service.FindTables(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tables)
}

// ResetTablesHandler handles DELETE /api/bookings/tables, clearing the
// search results when the booking page unmounts.
func (h *BookingHandler) ResetTablesHandler(c *gin.Context) {
	h.Service.ResetTables()
	c.Status(http.StatusNoContent)
}

// CreateReservationHandler handles POST /api/bookings. The confirmation step
// the client submits carries the derived time range and the table capacity;
// the capacity guard refuses over-capacity submissions before any upstream
// call is made.
func (h *BookingHandler) CreateReservationHandler(c *gin.Context) {
	sess, _ := middleware.SessionFrom(c)
	var conf booking.Confirmation
	if err := c.ShouldBindJSON(&conf); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid reservation payload", err.Error())
		return
	}
	msg, err := h.Service.CreateReservation(c.Request.Context(), sess, conf)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}
