package clock

import (
	"context"
	"sync"
	"time"

	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/logger"
)

type config interface {
	ClockTick() int64
}

// Display holds the date and time the prompt shows. A ticker refreshes it
// periodically, mirroring the entry form's clock; it never touches the
// ledger.
type Display struct {
	mu      sync.RWMutex
	current time.Time
	tick    time.Duration
}

func NewDisplay(config config) *Display {
	return &Display{
		current: time.Now(),
		tick:    time.Duration(config.ClockTick()) * time.Second,
	}
}

func (d *Display) Run(ctx context.Context) {
	ticker := time.NewTicker(d.tick)
	defer ticker.Stop()

	logger.Info("Start clock refresh")
	for {
		select {
		case <-ctx.Done():
			logger.Info("Stop clock refresh")
			return
		case t := <-ticker.C:
			d.mu.Lock()
			d.current = t
			d.mu.Unlock()
		}
	}
}

func (d *Display) Now() time.Time {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.current
}

func (d *Display) DateString() string {
	return d.Now().Format(expense.DateLayout)
}

func (d *Display) TimeString() string {
	return d.Now().Format(expense.TimeLayout)
}
