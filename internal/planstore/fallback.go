package planstore

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/muhammadolammi/studyplanapi/internal/planner"
)

// Fallback composes a primary and a secondary store. The secondary is a
// failover path, not a cache: it is touched only when the primary fails.
type Fallback struct {
	Primary   Store
	Secondary Store
}

func NewFallback(primary, secondary Store) *Fallback {
	return &Fallback{Primary: primary, Secondary: secondary}
}

func (s *Fallback) Get(ctx context.Context, id uuid.UUID) (*planner.StudyPlan, error) {
	plan, err := s.Primary.Get(ctx, id)
	if err == nil {
		return plan, nil
	}
	if !errors.Is(err, ErrNotFound) {
		log.Printf("primary store read failed for plan %s, trying fallback: %v", id, err)
	}

	plan, fallbackErr := s.Secondary.Get(ctx, id)
	if fallbackErr == nil {
		return plan, nil
	}
	if errors.Is(err, ErrNotFound) {
		// The primary answered definitively; a secondary outage must not
		// turn a miss into a server error.
		if !errors.Is(fallbackErr, ErrNotFound) {
			log.Printf("fallback store read failed for plan %s: %v", id, fallbackErr)
		}
		return nil, ErrNotFound
	}
	if errors.Is(fallbackErr, ErrNotFound) {
		return nil, fmt.Errorf("primary store failed and fallback has no copy: %w", err)
	}
	return nil, fmt.Errorf("both stores failed reading plan %s: %v; %w", id, err, fallbackErr)
}

func (s *Fallback) Put(ctx context.Context, plan *planner.StudyPlan) error {
	err := s.Primary.Put(ctx, plan)
	if err == nil {
		return nil
	}
	log.Printf("primary store write failed for plan %s, trying fallback: %v", plan.ID, err)

	if fallbackErr := s.Secondary.Put(ctx, plan); fallbackErr != nil {
		return fmt.Errorf("both stores failed writing plan %s: %v; %w", plan.ID, err, fallbackErr)
	}
	return nil
}
