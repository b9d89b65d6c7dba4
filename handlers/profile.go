package handlers

import (
	"net/http"

	"github.com/dawar-shafaque/restaurant-application/middleware"
	"github.com/dawar-shafaque/restaurant-application/models"
	"github.com/dawar-shafaque/restaurant-application/services/profile"
	"github.com/dawar-shafaque/restaurant-application/utils"

	"github.com/gin-gonic/gin"
)

// ProfileHandler exposes the user profile workflow.
type ProfileHandler struct {
	Service profile.ProfileService
}

func NewProfileHandler(service profile.ProfileService) *ProfileHandler {
	return &ProfileHandler{Service: service}
}

// GetProfileHandler handles GET /api/users/profile.
func (h *ProfileHandler) GetProfileHandler(c *gin.Context) {
	sess, _ := middleware.SessionFrom(c)
	p, err := h.Service.Get(c.Request.Context(), sess)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpdateProfileHandler handles PUT /api/users/profile. On success the
// session's display name follows the new profile.
func (h *ProfileHandler) UpdateProfileHandler(c *gin.Context) {
	sess, _ := middleware.SessionFrom(c)
	id, _ := middleware.SessionIDFrom(c)
	var p models.UserProfile
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid profile payload", err.Error())
		return
	}
	updated, err := h.Service.Update(c.Request.Context(), id, sess, p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
