package booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/dawar-shafaque/restaurant-application/api"
	"github.com/dawar-shafaque/restaurant-application/models"
	"github.com/dawar-shafaque/restaurant-application/session"
	"github.com/dawar-shafaque/restaurant-application/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, backend http.HandlerFunc) (*DefaultBookingService, *atomic.Int64) {
	t.Helper()
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		backend(w, r)
	}))
	t.Cleanup(srv.Close)

	return &DefaultBookingService{
		Client: api.NewClient(srv.Client()),
		Endpoints: api.Endpoints{
			Tables:         srv.URL + "/bookings/tables",
			BookingClients: srv.URL + "/bookings/client",
		},
		Tables: &store.Store[[]models.Table]{},
	}, &calls
}

func TestTableQueryValidate(t *testing.T) {
	valid := TableQuery{LocationID: "loc-1", Date: "2025-10-04", Time: "12:15", Guests: 2}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		mutate  func(*TableQuery)
		wantErr error
	}{
		{"missing location", func(q *TableQuery) { q.LocationID = "" }, ErrLocationRequired},
		{"missing date", func(q *TableQuery) { q.Date = "  " }, ErrDateRequired},
		{"zero guests", func(q *TableQuery) { q.Guests = 0 }, ErrGuestsRequired},
		{"missing time", func(q *TableQuery) { q.Time = "" }, ErrTimeRequired},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q := valid
			tc.mutate(&q)
			assert.ErrorIs(t, q.Validate(), tc.wantErr)
		})
	}
}

func TestFindTablesRejectsInvalidQueryBeforeNetwork(t *testing.T) {
	svc, calls := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	_, err := svc.FindTables(context.Background(), TableQuery{Date: "2025-10-04", Time: "12:15", Guests: 2})
	assert.ErrorIs(t, err, ErrLocationRequired)
	assert.EqualValues(t, 0, calls.Load())
	assert.Equal(t, store.StatusIdle, svc.Tables.Snapshot().Status)
}

func TestFindTablesPopulatesStore(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "loc-1", q.Get("locationId"))
		assert.Equal(t, "2025-10-04", q.Get("date"))
		assert.Equal(t, "2", q.Get("guests"))
		assert.Equal(t, "12:15", q.Get("time"))
		w.Write([]byte(`[{"tableNumber":"3","guestCapacity":"4","availableSlots":["12:15 - 13:45"]}]`))
	})

	tables, err := svc.FindTables(context.Background(), TableQuery{
		LocationID: "loc-1", Date: "2025-10-04", Time: "12:15", Guests: 2,
	})
	require.NoError(t, err)
	require.Len(t, tables, 1)

	snap := svc.Tables.Snapshot()
	assert.Equal(t, store.StatusLoaded, snap.Status)
	assert.Equal(t, "3", snap.Data[0].TableNumber)
}

func TestFindTablesFailureRecordsStoreError(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"message":"try later"}`))
	})

	_, err := svc.FindTables(context.Background(), TableQuery{
		LocationID: "loc-1", Date: "2025-10-04", Time: "12:15", Guests: 2,
	})
	assert.Error(t, err)
	snap := svc.Tables.Snapshot()
	assert.Equal(t, store.StatusError, snap.Status)
	assert.Equal(t, "try later", snap.Err)
}

func TestSplitSlot(t *testing.T) {
	from, to, err := SplitSlot("12:15 - 13:45")
	require.NoError(t, err)
	assert.Equal(t, "12:15", from)
	assert.Equal(t, "13:45", to)

	_, _, err = SplitSlot("12:15-13:45")
	assert.Error(t, err)
}

func TestNewConfirmationClampsGuests(t *testing.T) {
	table := models.Table{TableNumber: "3", GuestCapacity: "4", LocationID: "loc-1"}

	conf, err := NewConfirmation(table, "12:15 - 13:45", "2025-10-04", 0)
	require.NoError(t, err)
	assert.Equal(t, MinGuests, conf.Guests)

	conf, err = NewConfirmation(table, "12:15 - 13:45", "2025-10-04", 99)
	require.NoError(t, err)
	assert.Equal(t, MaxGuests, conf.Guests)

	assert.Equal(t, "12:15", conf.TimeFrom)
	assert.Equal(t, "13:45", conf.TimeTo)
	assert.Equal(t, 4, conf.GuestCapacity)
}

func TestNewConfirmationMalformedCapacity(t *testing.T) {
	table := models.Table{TableNumber: "3", GuestCapacity: "four"}
	_, err := NewConfirmation(table, "12:15 - 13:45", "2025-10-04", 2)
	assert.Error(t, err)
}

func TestCreateReservationCapacityGuardSkipsNetwork(t *testing.T) {
	svc, calls := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"should never arrive"}`))
	})

	conf := Confirmation{TableNumber: "3", Guests: 6, GuestCapacity: 4}
	_, err := svc.CreateReservation(context.Background(), session.Session{Token: "tok"}, conf)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.EqualValues(t, 0, calls.Load(), "doomed request must stay off the wire")
}

func TestCreateReservationDefaultMessage(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusCreated)
	})

	conf := Confirmation{TableNumber: "3", Guests: 4, GuestCapacity: 4}
	msg, err := svc.CreateReservation(context.Background(), session.Session{Token: "tok"}, conf)
	require.NoError(t, err)
	assert.Equal(t, "Reservation made successfully!", msg)
}

func TestResetTables(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"tableNumber":"3","guestCapacity":"4"}]`))
	})

	_, err := svc.FindTables(context.Background(), TableQuery{
		LocationID: "loc-1", Date: "2025-10-04", Time: "12:15", Guests: 2,
	})
	require.NoError(t, err)

	svc.ResetTables()
	snap := svc.Tables.Snapshot()
	assert.Equal(t, store.StatusIdle, snap.Status)
	assert.Nil(t, snap.Data)
}
