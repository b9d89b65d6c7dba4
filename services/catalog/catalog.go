package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dawar-shafaque/restaurant-application/api"
	"github.com/dawar-shafaque/restaurant-application/models"
)

// Locations fetches all restaurant sites into the Locations store. The AWS
// topology wraps the array in a table-named envelope; both shapes are
// tolerated.
func (s *DefaultCatalogService) Locations(ctx context.Context) ([]models.Location, error) {
	gen := s.LocationsStore.Begin()
	var raw json.RawMessage
	if err := s.Client.DoJSON(ctx, http.MethodGet, s.Endpoints.Locations, "", nil, &raw); err != nil {
		s.LocationsStore.Fail(gen, err.Error())
		return nil, err
	}
	locations, err := decodeWrapped[models.Location](raw)
	if err != nil {
		s.LocationsStore.Fail(gen, err.Error())
		return nil, err
	}
	s.LocationsStore.Resolve(gen, locations)
	return locations, nil
}

// LocationOptions fetches the slim {id,address} dropdown list.
func (s *DefaultCatalogService) LocationOptions(ctx context.Context) ([]models.LocationOption, error) {
	gen := s.LocationOptionsStore.Begin()
	var raw json.RawMessage
	if err := s.Client.DoJSON(ctx, http.MethodGet, s.Endpoints.LocationsOptions, "", nil, &raw); err != nil {
		s.LocationOptionsStore.Fail(gen, err.Error())
		return nil, err
	}
	options, err := decodeWrapped[models.LocationOption](raw)
	if err != nil {
		s.LocationOptionsStore.Fail(gen, err.Error())
		return nil, err
	}
	s.LocationOptionsStore.Resolve(gen, options)
	return options, nil
}

// SpecialityDishes lists a location's signature dishes.
func (s *DefaultCatalogService) SpecialityDishes(ctx context.Context, locationID string) ([]models.Dish, error) {
	var dishes []models.Dish
	u := api.Join(s.Endpoints.Locations, locationID, "speciality-dishes")
	if err := s.Client.DoJSON(ctx, http.MethodGet, u, "", nil, &dishes); err != nil {
		return nil, err
	}
	return dishes, nil
}

// Reviews pages through a location's customer feedback.
func (s *DefaultCatalogService) Reviews(ctx context.Context, locationID string, q ReviewQuery) ([]models.Review, error) {
	params := url.Values{}
	params.Set("type", q.Type)
	params.Set("sortBy", q.SortBy)
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("size", strconv.Itoa(q.Size))
	u := api.Join(s.Endpoints.Reviews, locationID, "feedbacks") + "?" + params.Encode()

	var reviews []models.Review
	if err := s.Client.DoJSON(ctx, http.MethodGet, u, "", nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// Dishes lists the menu, filterable by category and sortable by
// popularity or price.
func (s *DefaultCatalogService) Dishes(ctx context.Context, q DishQuery) ([]models.Dish, error) {
	params := url.Values{}
	params.Set("dishType", q.DishType)
	params.Set("sort", q.Sort)
	u := s.Endpoints.Dishes + "?" + params.Encode()

	var dishes []models.Dish
	if err := s.Client.DoJSON(ctx, http.MethodGet, u, "", nil, &dishes); err != nil {
		return nil, err
	}
	return dishes, nil
}

// Dish fetches one dish with its nutrition fields.
func (s *DefaultCatalogService) Dish(ctx context.Context, id string) (*models.Dish, error) {
	var dish models.Dish
	if err := s.Client.DoJSON(ctx, http.MethodGet, api.Join(s.Endpoints.Dishes, id), "", nil, &dish); err != nil {
		return nil, err
	}
	return &dish, nil
}

// PopularDishes lists the landing page's dish carousel.
func (s *DefaultCatalogService) PopularDishes(ctx context.Context) ([]models.Dish, error) {
	var dishes []models.Dish
	if err := s.Client.DoJSON(ctx, http.MethodGet, s.Endpoints.PopularDishes, "", nil, &dishes); err != nil {
		return nil, err
	}
	return dishes, nil
}

// decodeWrapped accepts either a bare array or a single-key envelope whose
// value is the array (the AWS topology names the envelope after its table).
func decodeWrapped[T any](raw json.RawMessage) ([]T, error) {
	var items []T
	if err := json.Unmarshal(raw, &items); err == nil {
		return items, nil
	}
	var envelope map[string][]T
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("unexpected collection shape: %w", err)
	}
	for _, v := range envelope {
		return v, nil
	}
	return nil, nil
}
