package motion

import "time"

// tickStats holds per-tick counters. Only populated when the driver is in
// debug mode.
type tickStats struct {
	ticked     int
	removed    int
	registered int
	elapsed    time.Duration
}

// debugLog reports tick stats at debug level.
func (d *Driver) debugLog(stats tickStats) {
	if !d.debug {
		return
	}
	d.logger.Debug("driver tick",
		"ticked", stats.ticked,
		"deferredRemovals", stats.removed,
		"registered", stats.registered,
		"elapsed", stats.elapsed)
}

// debugMaxRegistrations is the number of live registrations past which a
// leak of never-completing animations is suspected.
const debugMaxRegistrations = 1000

// debugCheckRegistrations warns if the registration list has grown past
// debugMaxRegistrations.
func debugCheckRegistrations(d *Driver) {
	if n := len(d.entries); n > debugMaxRegistrations {
		d.logger.Warn("driver registration count exceeds threshold",
			"registered", n, "threshold", debugMaxRegistrations)
	}
}
