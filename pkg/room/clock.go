package room

import (
	"context"
	"time"
)

// Clock paces the table's run loop. Abstracting it lets tests drive the
// round state machine without real delays.
type Clock interface {
	// Sleep waits for d or until the context is canceled
	Sleep(ctx context.Context, d time.Duration) error
}

type realClock struct{}

func (realClock) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
