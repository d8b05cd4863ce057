// Package planstore persists study plans. The primary store is Postgres;
// an R2 object store serves as a best-effort failover path (not a cache).
// Plans are always read and written as whole records so readers never see
// the task list and metadata out of sync.
package planstore

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/muhammadolammi/studyplanapi/internal/planner"
)

// ErrNotFound means no store holds a plan with the given id.
var ErrNotFound = errors.New("study plan not found")

// Store is the capability interface handlers depend on. Every
// implementation returns the same plan shape, so callers never branch on
// which store served a read.
type Store interface {
	Get(ctx context.Context, id uuid.UUID) (*planner.StudyPlan, error)
	Put(ctx context.Context, plan *planner.StudyPlan) error
}
