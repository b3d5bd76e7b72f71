package configs

import (
	"errors"
	"time"
)

// Dispatch tunes the newsletter fan-out. BatchSize bounds the number of
// concurrent transport calls; BatchPause is slept between batches as a
// courtesy to the provider.
type Dispatch struct {
	BatchSize  int           `env:"BATCH_SIZE" envDefault:"10"`
	BatchPause time.Duration `env:"BATCH_PAUSE" envDefault:"100ms"`
}

// Validate rejects settings the engine cannot run with.
func (c Dispatch) Validate() error {
	if c.BatchSize < 1 {
		return errors.New("DISPATCH_BATCH_SIZE must be positive")
	}
	if c.BatchPause < 0 {
		return errors.New("DISPATCH_BATCH_PAUSE must not be negative")
	}
	return nil
}
