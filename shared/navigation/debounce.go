package navigation

// Debouncer delays an action until no new trigger arrived for a fixed number
// of ticks. Each Trigger cancels the pending one and reschedules.
type Debouncer struct {
	delay     int
	remaining int
	pending   bool
}

// NewDebouncer returns a debouncer firing delay ticks after the last trigger.
// A delay below one fires on the next tick.
func NewDebouncer(delay int) *Debouncer {
	if delay < 1 {
		delay = 1
	}
	return &Debouncer{delay: delay}
}

// Trigger (re)schedules the action.
func (d *Debouncer) Trigger() {
	d.remaining = d.delay
	d.pending = true
}

// Tick advances one frame and reports whether the action fires now.
func (d *Debouncer) Tick() bool {
	if !d.pending {
		return false
	}
	d.remaining--
	if d.remaining > 0 {
		return false
	}
	d.pending = false
	return true
}

// Pending reports whether an action is scheduled.
func (d *Debouncer) Pending() bool { return d.pending }

// Cancel drops any scheduled action.
func (d *Debouncer) Cancel() {
	d.pending = false
	d.remaining = 0
}
