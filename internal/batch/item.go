package batch

import (
	"sync"
)

type State string

const (
	StatePending State = "pending"
	StateReady   State = "ready"
	StateFailed  State = "failed"
)

// Item is one requested size inside a batch. Its payload and in-flight
// flag are only touched under its own lock, so work on different items
// never contends.
type Item struct {
	ID        string
	SizeLabel string

	mu       sync.Mutex
	state    State
	payload  []byte
	inFlight bool
	lastErr  string
}

// ItemView is an immutable copy of an item's state.
type ItemView struct {
	ID        string `json:"id"`
	SizeLabel string `json:"size_label"`
	State     State  `json:"state"`
	Payload   []byte `json:"-"`
	InFlight  bool   `json:"in_flight"`
	Error     string `json:"error,omitempty"`
}

func (v ItemView) Ready() bool {
	return v.State == StateReady && len(v.Payload) > 0
}

func newItem(id, sizeLabel string) *Item {
	return &Item{
		ID:        id,
		SizeLabel: sizeLabel,
		state:     StatePending,
		inFlight:  true,
	}
}

func (it *Item) View() ItemView {
	it.mu.Lock()
	defer it.mu.Unlock()

	return ItemView{
		ID:        it.ID,
		SizeLabel: it.SizeLabel,
		State:     it.state,
		Payload:   it.payload,
		InFlight:  it.inFlight,
		Error:     it.lastErr,
	}
}

// begin marks the item in flight. It reports false if a request for the
// item is already running.
func (it *Item) begin() bool {
	it.mu.Lock()
	defer it.mu.Unlock()

	if it.inFlight {
		return false
	}
	it.inFlight = true
	it.state = StatePending
	it.lastErr = ""
	return true
}

func (it *Item) succeed(payload []byte) {
	it.mu.Lock()
	defer it.mu.Unlock()

	it.payload = payload
	it.inFlight = false
	it.state = StateReady
	it.lastErr = ""
}

// fail drops any previous payload so a failed refresh never leaves a
// stale image behind.
func (it *Item) fail(err error) {
	it.mu.Lock()
	defer it.mu.Unlock()

	it.payload = nil
	it.inFlight = false
	it.state = StateFailed
	if err != nil {
		it.lastErr = err.Error()
	}
}
