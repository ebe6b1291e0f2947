package motion

import (
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"
)

// Updater is a unit of per-frame work registered with a Driver. Registrations
// are keyed by the Updater value itself, so it must be comparable (pointer
// receivers are the norm).
type Updater interface {
	Update(dt float64)
}

// entry is one registration. removed marks a deferred removal requested
// during a tick; the entry is skipped and spliced out once the pass ends.
type entry struct {
	u       Updater
	removed bool
}

// Driver ticks every registered Updater once per frame. It is owned by the
// host application and injected wherever animations are built; there is no
// package-level instance.
//
// Updaters may add or remove registrations (including their own) while a tick
// is running. The list is walked in descending index order: an Updater
// removing itself is spliced out immediately, which leaves every unvisited
// (lower) index intact, while any other removal is deferred until the pass
// completes. Entries added mid-tick land above the cursor and are first
// ticked on the next frame.
//
// Driver is single-threaded; all calls must come from the frame loop.
type Driver struct {
	entries []*entry
	pending []*entry

	ticking bool
	current Updater

	logger *slog.Logger
	debug  bool
}

// NewDriver creates an empty driver. If logger is nil, slog.Default() is used.
func NewDriver(logger *slog.Logger) *Driver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Driver{logger: logger}
}

// Logger returns the logger shared by animations built on this driver.
func (d *Driver) Logger() *slog.Logger {
	return d.logger
}

// SetDebugMode enables or disables debug mode. When enabled, per-tick stats
// are logged at debug level and a warning is emitted when the number of
// registrations grows past a sanity threshold.
func (d *Driver) SetDebugMode(enabled bool) {
	d.debug = enabled
}

// Add registers u. A second registration of the same Updater would tick it
// twice per frame, so it is rejected with ErrDuplicateUpdater.
func (d *Driver) Add(u Updater) error {
	if u == nil {
		return ErrNilUpdater
	}
	if d.indexOf(u) >= 0 {
		d.logger.Error("duplicate driver registration rejected",
			"updater", fmt.Sprintf("%T", u))
		return ErrDuplicateUpdater
	}
	d.entries = append(d.entries, &entry{u: u})
	if d.debug {
		debugCheckRegistrations(d)
	}
	return nil
}

// Remove deregisters u and reports whether it was registered. Removing an
// Updater that is not registered is a no-op. During a tick, removal of any
// Updater other than the one currently executing is deferred to the end of
// the pass; the entry is not ticked again in the meantime.
func (d *Driver) Remove(u Updater) bool {
	i := d.indexOf(u)
	if i < 0 {
		return false
	}
	if d.ticking && u != d.current {
		e := d.entries[i]
		e.removed = true
		d.pending = append(d.pending, e)
		return true
	}
	d.removeAt(i)
	return true
}

// Contains reports whether u is registered and not pending removal.
func (d *Driver) Contains(u Updater) bool {
	return d.indexOf(u) >= 0
}

// Len returns the number of live registrations.
func (d *Driver) Len() int {
	n := 0
	for _, e := range d.entries {
		if !e.removed {
			n++
		}
	}
	return n
}

// Ticking reports whether a Tick is in progress.
func (d *Driver) Ticking() bool {
	return d.ticking
}

// Tick advances every registered Updater by dt seconds. Each Updater that was
// registered when the tick began is invoked exactly once unless it is removed
// before its turn. A panic raised by an Updater is logged and the tick carries
// on with the remaining entries.
//
// Calling Tick from inside an Updater panics.
func (d *Driver) Tick(dt float64) {
	if d.ticking {
		panic("motion: Driver.Tick called during a tick")
	}

	var stats tickStats
	var t0 time.Time
	if d.debug {
		t0 = time.Now()
	}

	d.ticking = true
	for i := len(d.entries) - 1; i >= 0; i-- {
		e := d.entries[i]
		if e.removed {
			continue
		}
		d.invoke(e.u, dt)
		stats.ticked++
	}
	d.ticking = false
	d.current = nil

	stats.removed = d.applyPending()

	if d.debug {
		stats.elapsed = time.Since(t0)
		stats.registered = len(d.entries)
		d.debugLog(stats)
	}
}

// invoke runs one Updater, converting a panic into an error-level log entry.
func (d *Driver) invoke(u Updater, dt float64) {
	d.current = u
	defer func() {
		d.current = nil
		if r := recover(); r != nil {
			d.logger.Error("animation update panicked",
				"updater", fmt.Sprintf("%T", u),
				"panic", r,
				"stack", string(debug.Stack()))
		}
	}()
	u.Update(dt)
}

// applyPending splices out the entries whose removal was deferred during the
// tick, highest index first. Every pending entry must be found exactly once;
// anything else means the bookkeeping is corrupt, which is an engine bug.
func (d *Driver) applyPending() int {
	if len(d.pending) == 0 {
		return 0
	}
	applied := 0
	for i := len(d.entries) - 1; i >= 0; i-- {
		if d.entries[i].removed {
			d.removeAt(i)
			applied++
		}
	}
	leftover := len(d.pending) - applied
	for i := range d.pending {
		d.pending[i] = nil
	}
	d.pending = d.pending[:0]

	if leftover != 0 {
		d.logger.Error("deferred removals left behind after cleanup",
			"expected", applied+leftover, "applied", applied)
		panic("motion: driver registration list is inconsistent")
	}
	return applied
}

// indexOf returns the index of the live entry for u, or -1.
func (d *Driver) indexOf(u Updater) int {
	for i, e := range d.entries {
		if e.u == u && !e.removed {
			return i
		}
	}
	return -1
}

// removeAt splices out entries[i] without retaining a dangling pointer in the
// backing array.
func (d *Driver) removeAt(i int) {
	copy(d.entries[i:], d.entries[i+1:])
	d.entries[len(d.entries)-1] = nil
	d.entries = d.entries[:len(d.entries)-1]
}
