package scheduler

import (
	"context"
	"time"
)

// ExpiryKind discriminates what an expiry message refers to.
type ExpiryKind string

const (
	// ExpireDuel asks the consumer to expire an abandoned duel, refunding
	// captured stakes if it is still active.
	ExpireDuel ExpiryKind = "duel"

	// ExpireAction asks the consumer to discard a pending action that was
	// never resolved.
	ExpireAction ExpiryKind = "action"
)

// ExpiryMessage is the payload of a scheduled expiry event.
type ExpiryMessage struct {
	Kind  ExpiryKind `json:"kind"`
	Token string     `json:"token"`
}

// Scheduler defines the interface for a component that schedules an expiry
// event for later processing.
type Scheduler interface {
	// ScheduleExpiry enqueues an expiry event to be delivered after delay.
	ScheduleExpiry(ctx context.Context, msg *ExpiryMessage, delay time.Duration) error
}
