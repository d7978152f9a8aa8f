package app

import "time"

// SetNow overrides the dashboard clock.
func SetNow(d *Dashboard, now func() time.Time) {
	d.now = now
}
