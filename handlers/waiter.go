package handlers

import (
	"net/http"

	"github.com/dawar-shafaque/restaurant-application/middleware"
	"github.com/dawar-shafaque/restaurant-application/services/waiter"
	"github.com/dawar-shafaque/restaurant-application/utils"

	"github.com/gin-gonic/gin"
)

// WaiterHandler exposes the staff reservation dashboard.
type WaiterHandler struct {
	Service waiter.WaiterService
}

func NewWaiterHandler(service waiter.WaiterService) *WaiterHandler {
	return &WaiterHandler{Service: service}
}

// SearchHandler handles GET /api/waiter/reservations.
func (h *WaiterHandler) SearchHandler(c *gin.Context) {
	sess, _ := middleware.SessionFrom(c)
	var f waiter.Filter
	if err := c.ShouldBindQuery(&f); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid reservation filter", err.Error())
		return
	}
	reservations, err := h.Service.Search(c.Request.Context(), sess, f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservations)
}

// CancelHandler handles DELETE /api/waiter/reservations/:id.
func (h *WaiterHandler) CancelHandler(c *gin.Context) {
	sess, _ := middleware.SessionFrom(c)
	msg, err := h.Service.Cancel(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// PostponeHandler handles PATCH /api/waiter/reservations/:id.
func (h *WaiterHandler) PostponeHandler(c *gin.Context) {
	sess, _ := middleware.SessionFrom(c)
	var req waiter.EditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid postpone payload", err.Error())
		return
	}
	msg, err := h.Service.Postpone(c.Request.Context(), sess, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// CreateBookingHandler handles POST /api/waiter/bookings.
func (h *WaiterHandler) CreateBookingHandler(c *gin.Context) {
	sess, _ := middleware.SessionFrom(c)
	var req waiter.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking payload", err.Error())
		return
	}
	msg, err := h.Service.CreateBooking(c.Request.Context(), sess, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// SearchCustomersHandler handles GET /api/waiter/customers?name=. The
// debounce lives client-side in the dashboard; this endpoint applies the
// minimum-length rule so sub-2-character queries never reach the backend.
func (h *WaiterHandler) SearchCustomersHandler(c *gin.Context) {
	sess, _ := middleware.SessionFrom(c)
	names, err := h.Service.SearchCustomers(c.Request.Context(), sess, c.Query("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	c.JSON(http.StatusOK, names)
}
