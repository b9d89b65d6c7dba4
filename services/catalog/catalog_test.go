package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dawar-shafaque/restaurant-application/api"
	"github.com/dawar-shafaque/restaurant-application/models"
	"github.com/dawar-shafaque/restaurant-application/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, backend http.HandlerFunc) *DefaultCatalogService {
	t.Helper()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)
	return &DefaultCatalogService{
		Client: api.NewClient(srv.Client()),
		Endpoints: api.Endpoints{
			Locations:        srv.URL + "/locations",
			LocationsOptions: srv.URL + "/locations/select-options",
			PopularDishes:    srv.URL + "/dishes/popular",
			Reviews:          srv.URL + "/locations",
			Dishes:           srv.URL + "/dishes",
		},
		LocationsStore:       &store.Store[[]models.Location]{},
		LocationOptionsStore: &store.Store[[]models.LocationOption]{},
	}
}

func TestLocationsBareArray(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"1","address":"12 Main St","rating":"4.7"}]`))
	})

	locations, err := svc.Locations(context.Background())
	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, "12 Main St", locations[0].Address)

	snap := svc.LocationsStore.Snapshot()
	assert.Equal(t, store.StatusLoaded, snap.Status)
}

func TestLocationsTableNamedEnvelope(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tm16-locations-dev6":[{"id":"1","address":"12 Main St"}]}`))
	})

	locations, err := svc.Locations(context.Background())
	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, "1", locations[0].ID)
}

func TestLocationsFailureRecordsStoreError(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := svc.Locations(context.Background())
	assert.Error(t, err)
	assert.Equal(t, store.StatusError, svc.LocationsStore.Snapshot().Status)
}

func TestLocationOptions(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/locations/select-options", r.URL.Path)
		w.Write([]byte(`[{"id":"1","address":"12 Main St"},{"id":"2","address":"9 Elm St"}]`))
	})

	options, err := svc.LocationOptions(context.Background())
	require.NoError(t, err)
	assert.Len(t, options, 2)
	assert.Equal(t, store.StatusLoaded, svc.LocationOptionsStore.Snapshot().Status)
}

func TestSpecialityDishes(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/locations/1/speciality-dishes", r.URL.Path)
		w.Write([]byte(`[{"id":"d1","name":"Paella","price":"18"}]`))
	})

	dishes, err := svc.SpecialityDishes(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, dishes, 1)
	assert.Equal(t, "Paella", dishes[0].Name)
}

func TestReviewsQueryParameters(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/locations/1/feedbacks", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "SERVICE", q.Get("type"))
		assert.Equal(t, "rating,desc", q.Get("sortBy"))
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "6", q.Get("size"))
		w.Write([]byte(`[{"id":"r1","rate":5,"comment":"Lovely"}]`))
	})

	reviews, err := svc.Reviews(context.Background(), "1", ReviewQuery{
		Type: "SERVICE", SortBy: "rating,desc", Page: 2, Size: 6,
	})
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, 5, reviews[0].Rate)
}

func TestDishesFilterAndSort(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "MAIN", q.Get("dishType"))
		assert.Equal(t, "price,asc", q.Get("sort"))
		w.Write([]byte(`[{"id":"d1","name":"Risotto","available":true}]`))
	})

	dishes, err := svc.Dishes(context.Background(), DishQuery{DishType: "MAIN", Sort: "price,asc"})
	require.NoError(t, err)
	require.Len(t, dishes, 1)
	assert.True(t, dishes[0].Available)
}

func TestDishDetail(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/dishes/d1", r.URL.Path)
		w.Write([]byte(`{"id":"d1","name":"Risotto","calories":"450 kcal"}`))
	})

	dish, err := svc.Dish(context.Background(), "d1")
	require.NoError(t, err)
	assert.Equal(t, "450 kcal", dish.Calories)
}

func TestPopularDishes(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/dishes/popular", r.URL.Path)
		w.Write([]byte(`[{"id":"d1"},{"id":"d2"}]`))
	})

	dishes, err := svc.PopularDishes(context.Background())
	require.NoError(t, err)
	assert.Len(t, dishes, 2)
}
