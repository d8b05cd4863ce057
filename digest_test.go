package main

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadolammi/studyplanapi/internal/planner"
)

func digestPlan(days int) *planner.StudyPlan {
	anchor := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	templates := planner.DefaultTemplates(days, "2-3")
	return planner.NewStudyPlan(uuid.New(), nil, "2-3", nil, days, templates, nil, nil, anchor, anchor)
}

func TestPlanDigestBounded(t *testing.T) {
	plan := digestPlan(60)
	digest := planDigest(plan, digestTaskLimit, "2026-01-05")

	lines := strings.Split(digest, "\n")
	if len(lines) != digestTaskLimit {
		t.Fatalf("digest should cap at %d tasks, got %d lines", digestTaskLimit, len(lines))
	}
	if !strings.HasPrefix(lines[0], "2026-01-05") {
		t.Fatalf("digest should start at today, got %q", lines[0])
	}
}

func TestPlanDigestStartsAtToday(t *testing.T) {
	plan := digestPlan(30)
	digest := planDigest(plan, digestTaskLimit, "2026-01-20")
	if strings.Contains(digest, "2026-01-19") {
		t.Fatalf("digest should not include past dates")
	}
	if !strings.HasPrefix(digest, "2026-01-20") {
		t.Fatalf("digest should start at today, got %q", digest)
	}
}

func TestPlanDigestPastPlanShowsTail(t *testing.T) {
	plan := digestPlan(5)
	digest := planDigest(plan, digestTaskLimit, "2027-06-01")
	if !strings.Contains(digest, "2026-01-09") {
		t.Fatalf("fully past plan should still show its tail, got %q", digest)
	}
}

func TestPlanDigestMarksRestDays(t *testing.T) {
	anchor := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	templates := planner.DefaultTemplates(3, "2-3")
	plan := planner.NewStudyPlan(uuid.New(), nil, "2-3", []string{"Mon", "Wed", "Fri"}, 7, templates, nil, nil, anchor, anchor)

	digest := planDigest(plan, digestTaskLimit, "2026-01-05")
	if !strings.Contains(digest, "2026-01-06 (Tue): rest day") {
		t.Fatalf("rest days should be marked, got %q", digest)
	}
}

func TestPlanDigestEmptyPlan(t *testing.T) {
	plan := digestPlan(0)
	if got := planDigest(plan, digestTaskLimit, "2026-01-05"); !strings.Contains(got, "no tasks") {
		t.Fatalf("unexpected digest for empty plan: %q", got)
	}
}
