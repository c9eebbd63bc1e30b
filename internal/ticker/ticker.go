// Package ticker runs a callback on a fixed cadence until it reports it is
// done or the context ends.
package ticker

import (
	"context"
	"time"
)

// Poll calls fn immediately and then every interval. It returns nil once
// fn returns true, or ctx.Err() when ctx is cancelled first.
func Poll(ctx context.Context, interval time.Duration, fn func(now time.Time) bool) error {
	if fn(time.Now()) {
		return nil
	}

	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-t.C:
			if fn(now) {
				return nil
			}
		}
	}
}

// Start runs Poll in the background. The returned stop function cancels
// the loop and waits for it to exit.
func Start(ctx context.Context, interval time.Duration, fn func(now time.Time) bool) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = Poll(ctx, interval, fn)
	}()
	return func() {
		cancel()
		<-done
	}
}
