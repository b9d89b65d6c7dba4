package handlers

import (
	"net/http"

	"github.com/dawar-shafaque/restaurant-application/middleware"
	"github.com/dawar-shafaque/restaurant-application/models"
	"github.com/dawar-shafaque/restaurant-application/services/reservation"
	"github.com/dawar-shafaque/restaurant-application/utils"

	"github.com/gin-gonic/gin"
)

// ReservationHandler exposes the customer reservation management workflow.
type ReservationHandler struct {
	Service reservation.ReservationService
}

func NewReservationHandler(service reservation.ReservationService) *ReservationHandler {
	return &ReservationHandler{Service: service}
}

// reservationView decorates a reservation with the actions its status
// offers, so the client renders affordances without re-deriving the state
// machine.
type reservationView struct {
	models.Reservation
	Actions []models.ReservationAction `json:"actions"`
}

func toViews(list []models.Reservation) []reservationView {
	views := make([]reservationView, 0, len(list))
	for _, r := range list {
		actions := r.Actions()
		if actions == nil {
			actions = []models.ReservationAction{}
		}
		views = append(views, reservationView{Reservation: r, Actions: actions})
	}
	return views
}

// ListHandler handles GET /api/reservations.
func (h *ReservationHandler) ListHandler(c *gin.Context) {
	sess, _ := middleware.SessionFrom(c)
	list, err := h.Service.List(c.Request.Context(), sess)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toViews(list))
}

// EditHandler handles PATCH /api/reservations/:id. The response carries the
// re-fetched list; the client replaces its view wholesale.
func (h *ReservationHandler) EditHandler(c *gin.Context) {
	sess, _ := middleware.SessionFrom(c)
	var req reservation.EditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid edit payload", err.Error())
		return
	}
	list, msg, err := h.Service.Edit(c.Request.Context(), sess, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg, "reservations": toViews(list)})
}

// CancelHandler handles DELETE /api/reservations/:id.
func (h *ReservationHandler) CancelHandler(c *gin.Context) {
	sess, _ := middleware.SessionFrom(c)
	list, msg, err := h.Service.Cancel(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg, "reservations": toViews(list)})
}

// GetFeedbackHandler handles GET /api/reservations/:id/feedback.
func (h *ReservationHandler) GetFeedbackHandler(c *gin.Context) {
	sess, _ := middleware.SessionFrom(c)
	fb, err := h.Service.GetFeedback(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fb)
}

// SubmitFeedbackHandler handles POST /api/reservations/:id/feedback. The
// upsert is idempotent: a second submission overwrites the first.
func (h *ReservationHandler) SubmitFeedbackHandler(c *gin.Context) {
	sess, _ := middleware.SessionFrom(c)
	var fb models.Feedback
	if err := c.ShouldBindJSON(&fb); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid feedback payload", err.Error())
		return
	}
	fb.ReservationID = c.Param("id")
	msg, err := h.Service.SubmitFeedback(c.Request.Context(), sess, fb)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}
