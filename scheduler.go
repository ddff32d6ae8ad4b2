package typewriter

import (
	"runtime"
	"sync"
	"time"
)

type (
	// Scheduler is the timer collaborator driving every step.
	Scheduler interface {
		// Now returns the scheduler's notion of the current time.
		Now() time.Time

		// AfterFunc invokes fn once after delay.
		AfterFunc(delay time.Duration, fn func())

		// Every invokes tick every interval until tick returns false or the
		// returned cancel func is called.
		Every(interval time.Duration, tick func() bool) (cancel func())
	}

	// SystemScheduler is backed by the runtime timers.
	SystemScheduler struct{}

	// VirtualScheduler runs timers against a virtual clock that jumps
	// straight to each deadline, so a sequence finishes as fast as the
	// callbacks run while timestamps stay exact.
	VirtualScheduler struct {
		mu      sync.Mutex
		epoch   time.Time
		elapsed time.Duration
		closed  chan struct{}
		once    sync.Once
	}
)

var (
	_ Scheduler = SystemScheduler{}
	_ Scheduler = &VirtualScheduler{}
)

func (SystemScheduler) Now() time.Time {
	return time.Now()
}

func (SystemScheduler) AfterFunc(delay time.Duration, fn func()) {
	time.AfterFunc(delay, fn)
}

func (SystemScheduler) Every(interval time.Duration, tick func() bool) func() {
	// time.NewTicker rejects non-positive intervals
	if interval <= 0 {
		interval = time.Nanosecond
	}

	ticker := time.NewTicker(interval)
	stop := make(chan struct{})
	var once sync.Once
	cancel := func() {
		once.Do(func() { close(stop) })
	}

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				if !tick() {
					cancel()
					return
				}
			}
		}
	}()

	return cancel
}

func NewVirtualScheduler() *VirtualScheduler {
	return &VirtualScheduler{
		epoch:  time.Unix(0, 0).UTC(),
		closed: make(chan struct{}),
	}
}

func (vs *VirtualScheduler) Now() time.Time {
	vs.mu.Lock()
	defer vs.mu.Unlock()
	return vs.epoch.Add(vs.elapsed)
}

// Elapsed returns the virtual time spent since construction.
func (vs *VirtualScheduler) Elapsed() time.Duration {
	vs.mu.Lock()
	defer vs.mu.Unlock()
	return vs.elapsed
}

func (vs *VirtualScheduler) AfterFunc(delay time.Duration, fn func()) {
	go func() {
		if vs.isClosed() {
			return
		}
		vs.advance(delay)
		fn()
	}()
}

func (vs *VirtualScheduler) Every(interval time.Duration, tick func() bool) func() {
	stop := make(chan struct{})
	var once sync.Once
	cancel := func() {
		once.Do(func() { close(stop) })
	}

	go func() {
		for {
			select {
			case <-stop:
				return
			case <-vs.closed:
				return
			default:
			}

			vs.advance(interval)
			if !tick() {
				cancel()
				return
			}
			runtime.Gosched()
		}
	}()

	return cancel
}

// Close stops every pending timer. Steps waiting on them never complete.
func (vs *VirtualScheduler) Close() {
	vs.once.Do(func() { close(vs.closed) })
}

func (vs *VirtualScheduler) isClosed() bool {
	select {
	case <-vs.closed:
		return true
	default:
		return false
	}
}

func (vs *VirtualScheduler) advance(delay time.Duration) {
	if delay < 0 {
		delay = 0
	}
	vs.mu.Lock()
	vs.elapsed += delay
	vs.mu.Unlock()
}
