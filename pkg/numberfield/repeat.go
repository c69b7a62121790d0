package numberfield

import (
	"sync"
	"time"
)

// Timer is a pending scheduled call.
type Timer interface {
	Stop() bool
}

// Scheduler runs fn once after d elapses.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// repeater runs action immediately and then again every delay until stopped.
// Each fire schedules the next one after action returns, so fires never
// overlap. stop holds the same lock as a running fire; once it returns no
// further fire happens.
type repeater struct {
	mu        sync.Mutex
	scheduler Scheduler
	delay     time.Duration
	action    func()

	timer   Timer
	gen     uint64
	running bool
}

func newRepeater(s Scheduler, delay time.Duration, action func()) *repeater {
	return &repeater{scheduler: s, delay: delay, action: action}
}

func (r *repeater) start() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cancelLocked()
	r.gen++
	r.running = true
	r.fireLocked(r.gen)
}

func (r *repeater) stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cancelLocked()
}

func (r *repeater) active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

func (r *repeater) tick(gen uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.running || r.gen != gen {
		return
	}
	r.fireLocked(gen)
}

func (r *repeater) fireLocked(gen uint64) {
	if r.action != nil {
		r.action()
	}
	r.timer = r.scheduler.AfterFunc(r.delay, func() { r.tick(gen) })
}

func (r *repeater) cancelLocked() {
	r.running = false
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}
