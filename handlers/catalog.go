package handlers

import (
	"net/http"

	"github.com/dawar-shafaque/restaurant-application/services/catalog"
	"github.com/dawar-shafaque/restaurant-application/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes the public browse surface.
type CatalogHandler struct {
	Service catalog.CatalogService
}

func NewCatalogHandler(service catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Service: service}
}

// LocationsHandler handles GET /api/locations.
func (h *CatalogHandler) LocationsHandler(c *gin.Context) {
	locations, err := h.Service.Locations(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, locations)
}

// LocationOptionsHandler handles GET /api/locations/select-options.
func (h *CatalogHandler) LocationOptionsHandler(c *gin.Context) {
	options, err := h.Service.LocationOptions(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, options)
}

// SpecialityDishesHandler handles GET /api/locations/:id/speciality-dishes.
func (h *CatalogHandler) SpecialityDishesHandler(c *gin.Context) {
	dishes, err := h.Service.SpecialityDishes(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dishes)
}

// ReviewsHandler handles GET /api/locations/:id/feedbacks.
func (h *CatalogHandler) ReviewsHandler(c *gin.Context) {
	var q catalog.ReviewQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid review query", err.Error())
		return
	}
	if q.Size == 0 {
		q.Size = 6
	}
	reviews, err := h.Service.Reviews(c.Request.Context(), c.Param("id"), q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// DishesHandler handles GET /api/dishes.
func (h *CatalogHandler) DishesHandler(c *gin.Context) {
	var q catalog.DishQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid dish query", err.Error())
		return
	}
	dishes, err := h.Service.Dishes(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dishes)
}

// DishHandler handles GET /api/dishes/:id.
func (h *CatalogHandler) DishHandler(c *gin.Context) {
	dish, err := h.Service.Dish(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dish)
}

// PopularDishesHandler handles GET /api/dishes/popular.
func (h *CatalogHandler) PopularDishesHandler(c *gin.Context) {
	dishes, err := h.Service.PopularDishes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dishes)
}
