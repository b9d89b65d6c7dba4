package waiter

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/dawar-shafaque/restaurant-application/session"
)

// DebounceDelay is how long the customer search waits after the last
// keystroke before issuing a request.
const DebounceDelay = 400 * time.Millisecond

// CustomerSearch debounces customer name lookups and discards stale
// responses: each accepted query gets a generation number, and a response is
// delivered only while its generation is still the latest. Without this, a
// slow response to an old query could overwrite the result of a newer one.
type CustomerSearch struct {
	svc      WaiterService
	sess     session.Session
	delay    time.Duration
	onResult func(names []string, err error)

	mu    sync.Mutex
	timer *time.Timer
	gen   uint64
}

// NewCustomerSearch builds a search stream delivering results to onResult.
// A zero delay falls back to DebounceDelay.
func NewCustomerSearch(svc WaiterService, sess session.Session, delay time.Duration, onResult func([]string, error)) *CustomerSearch {
	if delay <= 0 {
		delay = DebounceDelay
	}
	return &CustomerSearch{svc: svc, sess: sess, delay: delay, onResult: onResult}
}

// SetQuery registers a keystroke. Queries under two trimmed characters clear
// the result immediately and cancel any pending request.
func (cs *CustomerSearch) SetQuery(ctx context.Context, query string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cs.gen++
	gen := cs.gen
	if cs.timer != nil {
		cs.timer.Stop()
	}

	if len(strings.TrimSpace(query)) < 2 {
		cs.timer = nil
		go cs.deliver(gen, nil, nil)
		return
	}

	cs.timer = time.AfterFunc(cs.delay, func() {
		names, err := cs.svc.SearchCustomers(ctx, cs.sess, query)
		cs.deliver(gen, names, err)
	})
}

// Stop cancels any pending lookup and invalidates in-flight responses.
func (cs *CustomerSearch) Stop() {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.gen++
	if cs.timer != nil {
		cs.timer.Stop()
		cs.timer = nil
	}
}

func (cs *CustomerSearch) deliver(gen uint64, names []string, err error) {
	cs.mu.Lock()
	stale := gen != cs.gen
	cs.mu.Unlock()
	if stale {
		return
	}
	cs.onResult(names, err)
}
