/*
Package vsync schedules frame callbacks on display refresh.

A Waiter holds at most one pending callback. Scheduling is last-writer
wins: a second schedule before the next refresh replaces the first, so a
caller that schedules repeatedly still gets exactly one callback per
refresh. Callbacks run on the engine's runner context, not on the
goroutine signalling the refresh.

The actual refresh signal comes from a platform Source. Platforms with a
real vsync signal provide their own; SourceForTimer is the fallback that
synthesizes refreshes from a phase-locked timer.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 Pillarpond Engine contributors
*/
package vsync

import (
	"sync"
	"time"

	"github.com/npillmayer/schuko/tracing"

	"github.com/pillarpond/engine/core"
	"github.com/pillarpond/engine/engine/runloop"
)

// tracer traces with key 'pond.vsync'.
func tracer() tracing.Trace {
	return tracing.Select("pond.vsync")
}

// UnknownRefreshRate marks a display whose refresh rate cannot be
// determined.
const UnknownRefreshRate float64 = -1

// Callback receives the timestamps of the refresh that fired it: when the
// frame started and the deadline the frame should be finished by.
type Callback func(frameStart, frameTarget time.Time)

// Source is the platform hook delivering refresh signals. AwaitVSync is
// called once per scheduled callback and must arrange for FireCallback on
// the attached Waiter at the next refresh.
type Source interface {
	AwaitVSync()
	RefreshRate() float64
}

// Waiter dispatches display refreshes to a single pending callback.
type Waiter struct {
	runner *runloop.Runner
	source Source

	mu       sync.Mutex
	callback Callback
}

// NewWaiter creates a Waiter firing callbacks on runner, fed by source.
func NewWaiter(runner *runloop.Runner, source Source) *Waiter {
	return &Waiter{
		runner: runner,
		source: source,
	}
}

// AsyncWaitForVsync schedules cb for the next display refresh, replacing
// any callback already pending.
func (w *Waiter) AsyncWaitForVsync(cb Callback) error {
	if cb == nil {
		return core.Error(core.EINVALID, "vsync callback must not be nil")
	}
	w.mu.Lock()
	replaced := w.callback != nil
	w.callback = cb
	w.mu.Unlock()
	if replaced {
		// the pending AwaitVSync will pick up the new callback
		tracer().Debugf("vsync callback replaced before refresh")
		return nil
	}
	w.source.AwaitVSync()
	return nil
}

// FireCallback delivers a refresh to the pending callback, if any. Called
// by the Source, possibly from a platform signal goroutine; the callback
// itself runs on the waiter's runner context.
func (w *Waiter) FireCallback(frameStart, frameTarget time.Time) {
	w.mu.Lock()
	cb := w.callback
	w.callback = nil
	w.mu.Unlock()
	if cb == nil {
		return
	}
	tracer().Debugf("VSYNC frame start %v, target %v", frameStart, frameTarget)
	if w.runner == nil {
		cb(frameStart, frameTarget)
		return
	}
	if err := w.runner.Post(func() {
		cb(frameStart, frameTarget)
	}); err != nil {
		tracer().Infof("vsync fired after runner shutdown: %v", err)
	}
}

// RefreshRate reports the display refresh rate in Hz, or
// UnknownRefreshRate.
func (w *Waiter) RefreshRate() float64 {
	return w.source.RefreshRate()
}

// --- Timer fallback --------------------------------------------------------

// timerSource synthesizes refresh signals from a phase-locked timer: each
// signal fires at the next multiple of the frame interval after the
// source's start, so synthesized refreshes stay on a fixed raster even
// when scheduling is late.
type timerSource struct {
	waiter   *Waiter
	interval time.Duration
	phase    time.Time
}

// SourceForTimer creates a Waiter driven by a synthesized refresh signal
// at the given rate (Hz). Used on platforms without a real vsync signal.
func SourceForTimer(runner *runloop.Runner, rate float64) *Waiter {
	if rate <= 0 {
		rate = 60
	}
	src := &timerSource{
		interval: time.Duration(float64(time.Second) / rate),
		phase:    time.Now(),
	}
	w := NewWaiter(runner, src)
	src.waiter = w
	return w
}

func (src *timerSource) AwaitVSync() {
	now := time.Now()
	next := src.nextAfter(now)
	time.AfterFunc(next.Sub(now), func() {
		start := time.Now()
		src.waiter.FireCallback(start, start.Add(src.interval))
	})
}

func (src *timerSource) RefreshRate() float64 {
	return float64(time.Second) / float64(src.interval)
}

func (src *timerSource) nextAfter(now time.Time) time.Time {
	elapsed := now.Sub(src.phase)
	slots := elapsed/src.interval + 1
	return src.phase.Add(slots * src.interval)
}
