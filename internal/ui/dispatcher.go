package ui

import (
	"sync"
	"time"

	"github.com/UsmanZaka51/emotion-api/internal/constants"
)

// Clock schedules deferred work. The real clock delegates to
// time.AfterFunc; tests install a manual clock to fire banner expiry
// without sleeping.
type Clock interface {
	AfterFunc(d time.Duration, f func()) (stop func() bool)
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) func() bool {
	return time.AfterFunc(d, f).Stop
}

// Dispatcher folds events into a single view state and broadcasts
// them to listeners. Events apply strictly in dispatch order, one at a
// time. Showing a success or error banner arms the auto-hide timer;
// showing a new banner restarts it; processing banners never expire.
type Dispatcher struct {
	mu        sync.RWMutex
	state     State
	clock     Clock
	hideDelay time.Duration
	stopTimer func() bool
	listeners []chan Event
}

// NewDispatcher creates a dispatcher with the real clock and the
// standard banner auto-hide delay.
func NewDispatcher() *Dispatcher {
	return NewDispatcherWithClock(realClock{}, constants.BannerAutoHideDelay)
}

// NewDispatcherWithClock creates a dispatcher with a custom clock and
// hide delay. Used by tests.
func NewDispatcherWithClock(clock Clock, hideDelay time.Duration) *Dispatcher {
	return &Dispatcher{
		state:     Initial(),
		clock:     clock,
		hideDelay: hideDelay,
	}
}

// State returns a snapshot of the current view state.
func (d *Dispatcher) State() State {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.state
}

// Dispatch applies one event and returns the resulting state.
func (d *Dispatcher) Dispatch(e Event) State {
	d.mu.Lock()

	previous := d.state.Banner
	d.state = Apply(d.state, e)
	current := d.state.Banner

	if current != previous {
		if d.stopTimer != nil {
			d.stopTimer()
			d.stopTimer = nil
		}
		if current.Visible && current.Kind != BannerProcessing {
			d.stopTimer = d.clock.AfterFunc(d.hideDelay, func() {
				d.Dispatch(BannerExpired())
			})
		}
	}

	state := d.state
	listeners := make([]chan Event, len(d.listeners))
	copy(listeners, d.listeners)
	d.mu.Unlock()

	for _, listener := range listeners {
		select {
		case listener <- e:
		default:
			// Listener buffer full, skip.
		}
	}

	return state
}

// AddListener adds an event listener.
func (d *Dispatcher) AddListener() chan Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	ch := make(chan Event, constants.EventChannelBuffer)
	d.listeners = append(d.listeners, ch)
	return ch
}

// RemoveListener removes an event listener.
func (d *Dispatcher) RemoveListener(ch chan Event) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, listener := range d.listeners {
		if listener == ch {
			d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
			close(ch)
			return
		}
	}
}
