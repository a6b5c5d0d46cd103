/*
Package runloop implements a serial task runner.

A Runner executes posted tasks strictly in FIFO order on a single
dedicated goroutine. It models the engine's "UI thread": resources whose
teardown must happen on one designated execution context are released by
posting a disposal task rather than by destroying them in place.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 Pillarpond Engine contributors
*/
package runloop

import (
	"sync"

	"github.com/emirpasic/gods/lists/singlylinkedlist"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pillarpond/engine/core"
)

// tracer traces with key 'pond.runloop'.
func tracer() tracing.Trace {
	return tracing.Select("pond.runloop")
}

// Task is a unit of work executed by a Runner.
type Task func()

// Runner is a serial task executor. All tasks run on the same goroutine,
// in posting order. The zero value is not usable; create Runners with New.
type Runner struct {
	mu      sync.Mutex
	cond    *sync.Cond
	pending *singlylinkedlist.List
	stopped bool
	done    chan struct{}
}

// New creates a Runner and starts its goroutine.
func New() *Runner {
	r := &Runner{
		pending: singlylinkedlist.New(),
		done:    make(chan struct{}),
	}
	r.cond = sync.NewCond(&r.mu)
	go r.loop()
	return r
}

// Post enqueues a task for execution. Posting to a stopped runner returns
// an error with code core.ESTATE and drops the task.
func (r *Runner) Post(task Task) error {
	if task == nil {
		return core.Error(core.EINVALID, "cannot post a nil task")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped {
		return core.Error(core.ESTATE, "runner is stopped")
	}
	r.pending.Add(task)
	r.cond.Signal()
	return nil
}

// Stop shuts the runner down. Tasks already posted are drained before the
// goroutine exits; Stop blocks until the drain is complete. Stopping a
// stopped runner is a no-op.
func (r *Runner) Stop() {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return
	}
	r.stopped = true
	r.cond.Signal()
	r.mu.Unlock()
	<-r.done
}

func (r *Runner) loop() {
	for {
		r.mu.Lock()
		for r.pending.Empty() && !r.stopped {
			r.cond.Wait()
		}
		if r.pending.Empty() && r.stopped {
			r.mu.Unlock()
			close(r.done)
			return
		}
		t, _ := r.pending.Get(0)
		r.pending.Remove(0)
		r.mu.Unlock()
		task, ok := t.(Task)
		if !ok {
			tracer().Errorf("runloop dequeued a non-task entry")
			continue
		}
		task()
	}
}
