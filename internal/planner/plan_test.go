package planner

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewStudyPlanShape(t *testing.T) {
	analysisID := uuid.New()
	plan := NewStudyPlan(analysisID, nil, "2-3", []string{"Mon", "Wed", "Fri"}, 7, sampleTemplates(5), nil, nil, mondayAnchor, mondayAnchor)

	if plan.TotalDays != 7 || len(plan.PlanData.Tasks) != 7 {
		t.Fatalf("expected 7 tasks, got %d", len(plan.PlanData.Tasks))
	}
	if plan.StartDate != "2026-01-05" || plan.EndDate != "2026-01-11" {
		t.Fatalf("unexpected date range: %s .. %s", plan.StartDate, plan.EndDate)
	}
	if plan.Status != "active" {
		t.Fatalf("new plans should be active, got %q", plan.Status)
	}
	if plan.AnalysisID != analysisID {
		t.Fatalf("analysis reference lost")
	}
	if plan.UserID != nil {
		t.Fatalf("anonymous plan should have no owner")
	}
	if len(plan.PlanData.Phases) == 0 {
		t.Fatalf("phases should default when none are supplied")
	}
	if plan.Metadata.Progress != 0 || plan.Metadata.CompletedTasks != 0 || plan.Metadata.TotalXP != 0 {
		t.Fatalf("fresh plan should have zero metadata: %+v", plan.Metadata)
	}
}

func TestNewStudyPlanEmptyTimeline(t *testing.T) {
	plan := NewStudyPlan(uuid.New(), nil, "2-3", nil, 0, nil, nil, nil, mondayAnchor, mondayAnchor)
	if len(plan.PlanData.Tasks) != 0 {
		t.Fatalf("zero-day plan should have no tasks")
	}
	if plan.PlanData.Summary.TotalXP != 0 || plan.PlanData.Summary.TotalHours != 0 {
		t.Fatalf("zero-day plan should have zero aggregates: %+v", plan.PlanData.Summary)
	}
	if len(plan.PlanData.Phases) != 0 {
		t.Fatalf("zero-day plan should have no phases")
	}
}

func TestDefaultPhasesCoverTimeline(t *testing.T) {
	phases := DefaultPhases(30)
	if len(phases) != 3 {
		t.Fatalf("expected 3 phases, got %d", len(phases))
	}
	if phases[0].Range[0] != 0 {
		t.Fatalf("first phase should start at 0")
	}
	if phases[len(phases)-1].Range[1] != 29 {
		t.Fatalf("last phase should end at the final day index")
	}
	for i := 1; i < len(phases); i++ {
		if phases[i].Range[0] != phases[i-1].Range[1]+1 {
			t.Fatalf("phases must not overlap: %+v", phases)
		}
	}
}
