package scheduler

import (
	"context"
	"time"
)

// NoOpScheduler is a scheduler that drops every expiry. Consumers that never
// schedule (the expiry lambda, the reconciliation sweep, tests) use it.
type NoOpScheduler struct{}

// ScheduleExpiry does nothing.
func (NoOpScheduler) ScheduleExpiry(ctx context.Context, msg *ExpiryMessage, delay time.Duration) error {
	return nil
}

var _ Scheduler = NoOpScheduler{}
