package catalog

import (
	"context"

	"github.com/dawar-shafaque/restaurant-application/api"
	"github.com/dawar-shafaque/restaurant-application/models"
	"github.com/dawar-shafaque/restaurant-application/store"
)

// ReviewQuery pages through a location's customer feedback.
type ReviewQuery struct {
	Type   string `form:"type" json:"type"`
	SortBy string `form:"sortBy" json:"sortBy"`
	Page   int    `form:"page" json:"page"`
	Size   int    `form:"size" json:"size"`
}

// DishQuery filters and sorts the menu.
type DishQuery struct {
	DishType string `form:"dishType" json:"dishType"`
	Sort     string `form:"sort" json:"sort"`
}

// CatalogService serves the public, read-only browse surface: locations,
// dropdown options, menus and reviews. Nothing here requires a session.
type CatalogService interface {
	Locations(ctx context.Context) ([]models.Location, error)
	LocationOptions(ctx context.Context) ([]models.LocationOption, error)
	SpecialityDishes(ctx context.Context, locationID string) ([]models.Dish, error)
	Reviews(ctx context.Context, locationID string, q ReviewQuery) ([]models.Review, error)
	Dishes(ctx context.Context, q DishQuery) ([]models.Dish, error)
	Dish(ctx context.Context, id string) (*models.Dish, error)
	PopularDishes(ctx context.Context) ([]models.Dish, error)
}

// DefaultCatalogService is the production implementation. It owns the
// Locations and LocationOptions store slices.
type DefaultCatalogService struct {
	Client               *api.Client
	Endpoints            api.Endpoints
	LocationsStore       *store.Store[[]models.Location]
	LocationOptionsStore *store.Store[[]models.LocationOption]
}
