// Package timeline runs ordered, delayed steps on a single goroutine.
//
// A Runner plays a Script: a list of actions, each at a fixed offset from the
// start of the run. Only one timer is pending at any time, so steps always
// execute in script order even when several share an offset. Playing a new
// script or cancelling bumps a generation counter; a timer belonging to an
// older generation does nothing when it fires.
//
// Runner is not safe for concurrent use. Callers own a single goroutine (an
// event loop) and give the Runner a Scheduler that delivers timer callbacks
// on that goroutine.
package timeline

import (
	"slices"
	"time"
)

// Step is one action at an offset from the start of a run.
type Step struct {
	At   time.Duration
	Name string
	Do   func()
}

// Script is an ordered list of steps.
type Script []Step

// NewScript sorts the steps by offset. Steps that share an offset keep the
// order they were given in.
func NewScript(steps ...Step) Script {
	s := slices.Clone(Script(steps))
	slices.SortStableFunc(s, func(a, b Step) int {
		switch {
		case a.At < b.At:
			return -1
		case a.At > b.At:
			return 1
		}
		return 0
	})
	return s
}

// Offset returns a copy of the script with every step shifted by d.
func (s Script) Offset(d time.Duration) Script {
	out := make(Script, len(s))
	for i, st := range s {
		st.At += d
		out[i] = st
	}
	return out
}

// Duration is the offset of the last step.
func (s Script) Duration() time.Duration {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1].At
}

// Timer is a pending callback.
type Timer interface {
	Stop() bool
}

// Scheduler arranges for f to run after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Runner plays one script at a time.
type Runner struct {
	sched   Scheduler
	gen     uint64
	timer   Timer
	running bool
}

// NewRunner returns an idle runner.
func NewRunner(sched Scheduler) *Runner {
	return &Runner{sched: sched}
}

// Play cancels the current run, if any, and starts script. done, when not
// nil, runs after the last step unless the run was cancelled first.
func (r *Runner) Play(script Script, done func()) {
	r.Cancel()
	r.running = true
	r.schedule(r.gen, script, 0, 0, done)
}

// Cancel stops the current run. Steps that have not executed yet never will.
func (r *Runner) Cancel() {
	r.gen++
	r.running = false
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}

// Running reports whether a run is in progress.
func (r *Runner) Running() bool { return r.running }

func (r *Runner) schedule(gen uint64, script Script, next int, elapsed time.Duration, done func()) {
	if next >= len(script) {
		r.running = false
		r.timer = nil
		if done != nil {
			done()
		}
		return
	}
	at := script[next].At
	r.timer = r.sched.AfterFunc(max(at-elapsed, 0), func() {
		if r.gen != gen {
			return
		}
		i := next
		for ; i < len(script) && script[i].At <= at; i++ {
			if script[i].Do != nil {
				script[i].Do()
			}
			// A step may cancel or restart the runner.
			if r.gen != gen {
				return
			}
		}
		r.schedule(gen, script, i, at, done)
	})
}
