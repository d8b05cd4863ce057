package planner

import (
	"errors"
	"testing"
	"time"
)

func TestSetTaskCompletion(t *testing.T) {
	plan := newTestPlan(t)
	now := mondayAnchor.Add(48 * time.Hour)

	if err := plan.SetTaskCompletion(0, true, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !plan.PlanData.Tasks[0].Completed {
		t.Fatalf("task 0 should be completed")
	}
	if plan.Metadata.CompletedTasks != 1 || plan.Metadata.TotalXP != 50 {
		t.Fatalf("unexpected metadata: %+v", plan.Metadata)
	}
	// 3 non-rest tasks, 1 completed.
	if plan.Metadata.Progress != 33 {
		t.Fatalf("progress=%d, want 33", plan.Metadata.Progress)
	}
	if !plan.UpdatedAt.Equal(now) {
		t.Fatalf("updatedAt not bumped")
	}
}

func TestSetTaskCompletionRestDayRejected(t *testing.T) {
	plan := newTestPlan(t)
	before := plan.Metadata

	err := plan.SetTaskCompletion(1, true, mondayAnchor)
	if !errors.Is(err, ErrRestDay) {
		t.Fatalf("expected ErrRestDay, got %v", err)
	}
	if plan.Metadata != before {
		t.Fatalf("metadata must not change on rejection: %+v", plan.Metadata)
	}
	if plan.PlanData.Tasks[1].Completed {
		t.Fatalf("rest day must stay uncompleted")
	}
}

func TestSetTaskCompletionOutOfRange(t *testing.T) {
	plan := newTestPlan(t)
	for _, index := range []int{-1, len(plan.PlanData.Tasks)} {
		err := plan.SetTaskCompletion(index, true, mondayAnchor)
		if !errors.Is(err, ErrTaskNotFound) {
			t.Fatalf("index %d: expected ErrTaskNotFound, got %v", index, err)
		}
	}
}

func TestSetTaskCompletionIdempotent(t *testing.T) {
	plan := newTestPlan(t)
	if err := plan.SetTaskCompletion(0, true, mondayAnchor); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first := plan.Metadata

	later := mondayAnchor.Add(time.Hour)
	if err := plan.SetTaskCompletion(0, true, later); err != nil {
		t.Fatalf("unexpected error on re-set: %v", err)
	}
	if plan.Metadata != first {
		t.Fatalf("aggregates must not change on idempotent re-set: %+v", plan.Metadata)
	}
	if !plan.UpdatedAt.Equal(later) {
		t.Fatalf("updatedAt should still be bumped")
	}
}

func TestMetadataInvariantAcrossMutations(t *testing.T) {
	plan := newTestPlan(t)

	checkInvariant := func(step string) {
		t.Helper()
		completed := 0
		nonRest := 0
		earned := 0
		for _, task := range plan.PlanData.Tasks {
			if !task.IsRestDay {
				nonRest++
			}
			if task.Completed {
				completed++
				if !task.IsRestDay {
					earned += task.XP
				}
			}
		}
		wantProgress := 0
		if nonRest > 0 {
			wantProgress = int(float64(completed)/float64(nonRest)*100 + 0.5)
		}
		if plan.Metadata.Progress != wantProgress || plan.Metadata.TotalXP != earned || plan.Metadata.CompletedTasks != completed {
			t.Fatalf("%s: metadata out of sync: %+v", step, plan.Metadata)
		}
	}

	plan.SetTaskCompletion(0, true, mondayAnchor)
	checkInvariant("complete")
	ApplyUpdates(plan, []PlanUpdate{{Type: UpdateReschedule, FromDate: dateAt(2), ToDate: dateAt(1)}}, mondayAnchor)
	checkInvariant("reschedule")
	plan.SetTaskCompletion(4, true, mondayAnchor)
	checkInvariant("complete again")
	plan.SetTaskCompletion(4, false, mondayAnchor)
	checkInvariant("uncomplete")
}
