package application

import (
	"context"
	"fmt"
	"sync"
	"time"

	"revobot/domain/entities"

	log "github.com/sirupsen/logrus"
)

// ReminderRunner runs one processing pass for the given civil date
type ReminderRunner interface {
	Run(ctx context.Context, asOf time.Time) (*RunReport, error)
}

// ReminderWorker polls for due reminders on a fixed interval.
// Timer ticks and forced runs share one mutex so at most one pass is in flight.
type ReminderWorker struct {
	runner   ReminderRunner
	interval time.Duration
	location *time.Location
	clock    func() time.Time

	mu sync.Mutex
}

// NewReminderWorker creates a new reminder worker
func NewReminderWorker(runner ReminderRunner, interval time.Duration, location *time.Location) *ReminderWorker {
	if location == nil {
		location = time.UTC
	}
	return &ReminderWorker{
		runner:   runner,
		interval: interval,
		location: location,
		clock:    time.Now,
	}
}

// WithClock replaces the time source used to compute "today"
func (w *ReminderWorker) WithClock(clock func() time.Time) *ReminderWorker {
	w.clock = clock
	return w
}

// Start waits for ready to be closed, runs a first pass, then polls on every interval.
// Returns a cleanup function that stops the worker and blocks until any in-flight pass,
// ticked or forced, has finished.
func (w *ReminderWorker) Start(ctx context.Context, ready <-chan struct{}) func() {
	stopChan := make(chan struct{})
	var once sync.Once
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()

		log.Info("Reminder worker waiting for Discord connection")

		select {
		case <-ready:
		case <-ctx.Done():
			log.Info("Reminder worker shutting down (context cancelled)...")
			return
		case <-stopChan:
			log.Info("Reminder worker shutting down (stop requested)...")
			return
		}

		log.WithField("interval", w.interval.String()).Info("Reminder worker started")

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.tick(ctx)

		for {
			select {
			case <-ctx.Done():
				log.Info("Reminder worker shutting down (context cancelled)...")
				return
			case <-stopChan:
				log.Info("Reminder worker shutting down (stop requested)...")
				return
			case <-ticker.C:
				w.tick(ctx)
			}
		}
	}()

	return func() {
		once.Do(func() { close(stopChan) })
		wg.Wait()

		// A forced pass runs outside the goroutine
		w.mu.Lock()
		w.mu.Unlock()
	}
}

// RunNow runs a pass immediately, waiting for any in-flight pass to finish first
func (w *ReminderWorker) RunNow(ctx context.Context) (*RunReport, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	log.Info("Forced reminder pass requested")
	return w.runPass(ctx)
}

// tick runs a pass unless one is already in flight
func (w *ReminderWorker) tick(ctx context.Context) {
	if !w.mu.TryLock() {
		log.Debug("Reminder pass already in flight, skipping tick")
		return
	}
	defer w.mu.Unlock()

	if _, err := w.runPass(ctx); err != nil {
		log.WithError(err).Error("Reminder pass failed")
	}
}

// runPass must be called with mu held
func (w *ReminderWorker) runPass(ctx context.Context) (*RunReport, error) {
	// An in-flight pass is never cancelled midway
	passCtx := context.WithoutCancel(ctx)

	asOf := entities.Today(w.clock(), w.location)
	report, err := w.runner.Run(passCtx, asOf)
	if err != nil {
		return nil, fmt.Errorf("reminder pass for %s failed: %w", entities.FormatEventDate(asOf), err)
	}

	return report, nil
}
