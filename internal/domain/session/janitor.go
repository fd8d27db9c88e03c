package session

import (
	"log/slog"
	"sync"
	"time"
)

// Janitor periodically flips stale online sessions to offline so that
// presence converges for clients that vanish without logging out. It
// sweeps once synchronously on Start and then on a fixed interval until
// Stop. Sweep failures are logged and swallowed; a datastore hiccup
// must not take the process down.
type Janitor struct {
	repo     Repository
	window   time.Duration
	interval time.Duration

	stop     chan struct{}
	done     chan struct{}
	started  bool
	stopOnce sync.Once
}

// NewJanitor creates a presence janitor over the session repository.
func NewJanitor(repo Repository, window, interval time.Duration) *Janitor {
	return &Janitor{
		repo:     repo,
		window:   window,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start runs one sweep immediately, then schedules sweeps on the
// configured interval in a background goroutine.
func (j *Janitor) Start() {
	j.SweepNow()
	j.started = true
	go j.run()
}

// Stop cancels the schedule and waits for any in-flight sweep to
// finish. Safe to call more than once, and a no-op on a janitor that
// was never started.
func (j *Janitor) Stop() {
	j.stopOnce.Do(func() {
		close(j.stop)
	})
	if !j.started {
		return
	}
	<-j.done
}

func (j *Janitor) run() {
	defer close(j.done)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			j.SweepNow()
		case <-j.stop:
			return
		}
	}
}

// SweepNow runs a single sweep. Exported so shutdown hooks and tests
// can trigger a sweep without waiting on the ticker.
func (j *Janitor) SweepNow() {
	n, err := j.repo.DeactivateStale(time.Now().UTC(), j.window)
	if err != nil {
		slog.Error("Presence sweep failed", "error", err)
		return
	}

	if n > 0 {
		slog.Info("Presence sweep marked sessions offline", "count", n)
	} else {
		slog.Debug("Presence sweep found no stale sessions")
	}
}
