// Package debounce coalesces bursts of calls into a single delayed call.
package debounce

import (
	"sync"
	"time"
)

// Debouncer runs its action once a burst of triggers has been quiet for the configured delay.
// Only the trailing edge fires: there is no leading call and no maximum wait.
type Debouncer struct {
	delay  time.Duration
	action func()

	m     sync.Mutex
	timer *time.Timer
}

// New creates new Debouncer instance.
func New(delay time.Duration, action func()) *Debouncer {
	return &Debouncer{
		delay:  delay,
		action: action,
	}
}

// Trigger cancels any pending run and schedules a new one after the delay.
func (d *Debouncer) Trigger() {
	d.m.Lock()
	defer d.m.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}

	var t *time.Timer
	t = time.AfterFunc(d.delay, func() {
		d.m.Lock()
		// A newer trigger replaced this timer after it had already fired.
		if d.timer != t {
			d.m.Unlock()
			return
		}
		d.timer = nil
		d.m.Unlock()

		d.action()
	})
	d.timer = t
}

// Stop cancels a pending run. Returns true if a run was pending.
func (d *Debouncer) Stop() bool {
	d.m.Lock()
	defer d.m.Unlock()

	if d.timer == nil {
		return false
	}
	d.timer.Stop()
	d.timer = nil

	return true
}
