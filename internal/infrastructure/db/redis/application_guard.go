package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const guardTTL = 24 * time.Hour

// ApplicationGuard provides best-effort duplicate-submission checks backed
// by Redis. Key format: apply:<employee_id>:<job_id>
//
// The guard is an optimization, never a correctness gate: a Redis outage
// degrades to accepting the submission.
type ApplicationGuard struct {
	client *redis.Client
}

// NewApplicationGuard creates an ApplicationGuard wrapping the given client.
func NewApplicationGuard(client *redis.Client) *ApplicationGuard {
	return &ApplicationGuard{client: client}
}

// AlreadyApplied reports whether this employee recently applied to this job.
func (g *ApplicationGuard) AlreadyApplied(ctx context.Context, employeeID, jobID string) (bool, error) {
	n, err := g.client.Exists(ctx, g.key(employeeID, jobID)).Result()
	if err != nil {
		return false, fmt.Errorf("duplicate check: %w", err)
	}
	return n > 0, nil
}

// Mark records a submitted application (expires after guardTTL).
func (g *ApplicationGuard) Mark(ctx context.Context, employeeID, jobID string) error {
	return g.client.Set(ctx, g.key(employeeID, jobID), "1", guardTTL).Err()
}

func (g *ApplicationGuard) key(employeeID, jobID string) string {
	return fmt.Sprintf("apply:%s:%s", employeeID, jobID)
}
