package service

import (
	"context"
	"log"
	"time"
)

// RefreshWorker periodically re-extracts every stored interest profile
// and recomputes each user's matches, so keyword extraction or taxonomy
// changes propagate without manual action. One worker runs per process,
// started once at startup and stopped for graceful shutdown.
type RefreshWorker struct {
	interests *InterestService
	interval  time.Duration

	stop chan struct{}
	done chan struct{}
}

// NewRefreshWorker creates a RefreshWorker running one pass every
// interval.
func NewRefreshWorker(interests *InterestService, interval time.Duration) *RefreshWorker {
	return &RefreshWorker{
		interests: interests,
		interval:  interval,
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// Start launches the background loop. The first pass runs immediately;
// later passes run every interval. A pass that outlasts the interval
// delays the next one rather than overlapping it.
func (w *RefreshWorker) Start() {
	go w.run()
}

// Stop signals the loop to exit and waits for the current pass, if any,
// to finish.
func (w *RefreshWorker) Stop() {
	close(w.stop)
	<-w.done
}

func (w *RefreshWorker) run() {
	defer close(w.done)

	w.runPass()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stop:
			return
		case <-ticker.C:
			w.runPass()
		}
	}
}

// runPass executes one refresh over all profiles. A failing pass is
// logged and the loop continues; per-user failures are already handled
// inside RefreshAllProfiles.
func (w *RefreshWorker) runPass() {
	log.Println("Running periodic interest refresh")

	refreshed, err := w.interests.RefreshAllProfiles(context.Background())
	if err != nil {
		log.Printf("interest refresh failed: %v", err)
		return
	}

	log.Printf("Interest refresh complete: %d profiles updated", refreshed)
}
