// Package timer implements the rest countdown used to pace recovery between
// sets: a small state machine with start/pause/reset transitions, a 1-second
// tick, set counting, and a best-effort audio cue on expiry.
package timer

import (
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Defaults applied when no explicit values are configured.
const (
	DefaultDurationSec = 90
	DefaultPlannedSets = 3
)

// Presets are the quick-select rest durations, in seconds.
var Presets = []int{60, 90, 120, 180}

// Beeper produces the audible cue when the countdown expires. Failures are
// logged and swallowed; they never disturb the state machine.
type Beeper interface {
	Beep() error
}

// Snapshot is an immutable view of the timer state.
type Snapshot struct {
	Duration    int
	Remaining   int
	PlannedSets int
	CurrentSet  int
	Running     bool
}

// Timer is the rest countdown state machine. All methods are safe for
// concurrent use; at most one tick source is ever active.
type Timer struct {
	mu          sync.Mutex
	duration    int
	remaining   int
	plannedSets int
	currentSet  int
	cancel      chan struct{} // non-nil while a tick goroutine is active
	interval    time.Duration

	beeper Beeper
	notify func(Snapshot)
	log    *slog.Logger
}

// New creates an idle timer with the given duration and planned set count.
// Non-positive arguments fall back to the defaults.
func New(durationSec, plannedSets int, beeper Beeper, log *slog.Logger) *Timer {
	if durationSec <= 0 {
		durationSec = DefaultDurationSec
	}
	if plannedSets <= 0 {
		plannedSets = DefaultPlannedSets
	}
	if log == nil {
		log = slog.Default()
	}
	return &Timer{
		duration:    durationSec,
		remaining:   durationSec,
		plannedSets: plannedSets,
		currentSet:  1,
		interval:    time.Second,
		beeper:      beeper,
		log:         log,
	}
}

// SetNotify registers a callback invoked after every state transition.
// The callback runs outside the timer lock.
func (t *Timer) SetNotify(fn func(Snapshot)) {
	t.mu.Lock()
	t.notify = fn
	t.mu.Unlock()
}

// State returns the current snapshot.
func (t *Timer) State() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshotLocked()
}

func (t *Timer) snapshotLocked() Snapshot {
	return Snapshot{
		Duration:    t.duration,
		Remaining:   t.remaining,
		PlannedSets: t.plannedSets,
		CurrentSet:  t.currentSet,
		Running:     t.cancel != nil,
	}
}

// Start begins the countdown. A second Start while already running is a
// no-op: the presence of the tick handle, not a flag, guards against a
// duplicate tick source. durationSec <= 0 keeps the last known duration;
// a remaining value outside [0, duration] is clamped back to duration.
func (t *Timer) Start(durationSec int) {
	t.mu.Lock()
	if t.cancel != nil {
		t.mu.Unlock()
		return
	}
	if durationSec > 0 {
		t.duration = durationSec
	}
	if t.remaining <= 0 || t.remaining > t.duration {
		t.remaining = t.duration
	}
	cancel := make(chan struct{})
	t.cancel = cancel
	t.mu.Unlock()

	go t.run(cancel)
	t.emit()
}

// run is the single tick source: one decrement per second until expiry or
// cancellation.
func (t *Timer) run(cancel chan struct{}) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			t.tick()
		case <-cancel:
			return
		}
	}
}

// tick decrements the countdown. On expiry it clamps remaining to zero,
// stops the tick source, fires the audio cue, and advances the set counter
// unless the planned count has been reached.
func (t *Timer) tick() {
	t.mu.Lock()
	t.remaining--
	expired := t.remaining <= 0
	if expired {
		t.remaining = 0
		t.stopLocked()
		if t.currentSet < t.plannedSets {
			t.currentSet++
		}
	}
	t.mu.Unlock()

	if expired {
		t.beep()
	}
	t.emit()
}

// Pause cancels the active tick source, if any. Remaining time is preserved.
func (t *Timer) Pause() {
	t.mu.Lock()
	t.stopLocked()
	t.mu.Unlock()
	t.emit()
}

// Reset stops any active tick, applies durationSec (keeping the last known
// duration when non-positive), and reinitializes remaining and the set
// counter.
func (t *Timer) Reset(durationSec int) {
	t.mu.Lock()
	t.stopLocked()
	if durationSec > 0 {
		t.duration = durationSec
	}
	t.remaining = t.duration
	t.currentSet = 1
	t.mu.Unlock()
	t.emit()
}

// ApplyPreset sets the duration to a preset value and performs a full reset.
func (t *Timer) ApplyPreset(seconds int) {
	t.Reset(seconds)
}

// SetPlannedSets updates the planned set count (minimum 1), clamping the
// current set index down if it now exceeds the count. A running countdown is
// not otherwise disturbed.
func (t *Timer) SetPlannedSets(n int) {
	if n <= 0 {
		n = 1
	}
	t.mu.Lock()
	t.plannedSets = n
	if t.currentSet > t.plannedSets {
		t.currentSet = t.plannedSets
	}
	t.mu.Unlock()
	t.emit()
}

func (t *Timer) stopLocked() {
	if t.cancel != nil {
		close(t.cancel)
		t.cancel = nil
	}
}

func (t *Timer) beep() {
	if t.beeper == nil {
		return
	}
	if err := t.beeper.Beep(); err != nil {
		t.log.Warn("audio cue unavailable", "error", err)
	}
}

func (t *Timer) emit() {
	t.mu.Lock()
	fn := t.notify
	snap := t.snapshotLocked()
	t.mu.Unlock()
	if fn != nil {
		fn(snap)
	}
}

// Format renders a second count as MM:SS for display.
func Format(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	return fmt.Sprintf("%02d:%02d", totalSeconds/60, totalSeconds%60)
}
