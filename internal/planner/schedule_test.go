package planner

import (
	"testing"
	"time"
)

// mondayAnchor is a known Monday.
var mondayAnchor = time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

func sampleTemplates(n int) []Template {
	templates := make([]Template, 0, n)
	for i := 0; i < n; i++ {
		templates = append(templates, Template{
			Theme:         "Foundations",
			Description:   "Lesson",
			Resource:      "Docs",
			EstimatedTime: "2h",
			XP:            50 + i*10,
		})
	}
	return templates
}

func TestBuildCalendarLengthAndDates(t *testing.T) {
	tasks, _ := BuildCalendar(sampleTemplates(30), 30, nil, mondayAnchor, "2-3")
	if len(tasks) != 30 {
		t.Fatalf("expected 30 tasks, got %d", len(tasks))
	}
	for i, task := range tasks {
		want := mondayAnchor.AddDate(0, 0, i).Format("2006-01-02")
		if task.CalendarDate != want {
			t.Fatalf("task %d: expected date %s, got %s", i, want, task.CalendarDate)
		}
		if task.IsRestDay {
			t.Fatalf("task %d: no rest days expected with an empty study-day set", i)
		}
	}
}

func TestBuildCalendarRestDays(t *testing.T) {
	tasks, summary := BuildCalendar(sampleTemplates(5), 7, []string{"Mon", "Wed", "Fri"}, mondayAnchor, "2-3")
	if len(tasks) != 7 {
		t.Fatalf("expected 7 tasks, got %d", len(tasks))
	}

	restByIndex := map[int]bool{1: true, 3: true, 5: true, 6: true} // Tue, Thu, Sat, Sun
	for i, task := range tasks {
		if task.IsRestDay != restByIndex[i] {
			t.Fatalf("task %d (%s): isRestDay=%v, want %v", i, task.DayOfWeek, task.IsRestDay, restByIndex[i])
		}
		if task.IsRestDay {
			if task.XP != 0 || task.EstimatedTime != "0h" || task.Completed {
				t.Fatalf("task %d: rest day invariant violated: %+v", i, task)
			}
		}
	}

	// Mon/Wed/Fri carry the first three templates.
	wantXP := 50 + 60 + 70
	if summary.TotalXP != wantXP {
		t.Fatalf("totalXP=%d, want %d", summary.TotalXP, wantXP)
	}
	if summary.TotalHours != 6 {
		t.Fatalf("totalHours=%v, want 6", summary.TotalHours)
	}
}

func TestBuildCalendarFullWeekEqualsEmptySet(t *testing.T) {
	all := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	withSet, _ := BuildCalendar(sampleTemplates(14), 14, all, mondayAnchor, "2-3")
	withEmpty, _ := BuildCalendar(sampleTemplates(14), 14, nil, mondayAnchor, "2-3")
	for i := range withSet {
		if withSet[i] != withEmpty[i] {
			t.Fatalf("task %d differs between full set and empty set", i)
		}
	}
}

func TestBuildCalendarZeroDays(t *testing.T) {
	tasks, summary := BuildCalendar(nil, 0, []string{"Mon"}, mondayAnchor, "2-3")
	if len(tasks) != 0 {
		t.Fatalf("expected empty task list, got %d tasks", len(tasks))
	}
	if summary.TotalXP != 0 || summary.TotalHours != 0 {
		t.Fatalf("expected zero aggregates, got %+v", summary)
	}
}

func TestBuildCalendarTemplateExhaustion(t *testing.T) {
	tasks, _ := BuildCalendar(sampleTemplates(1), 3, nil, mondayAnchor, "2-3")
	if tasks[0].Description != "Lesson" {
		t.Fatalf("first task should use the supplied template, got %q", tasks[0].Description)
	}
	if tasks[1].Description == "Lesson" || tasks[2].Description == "Lesson" {
		t.Fatalf("exhausted templates should synthesize placeholders")
	}
	if tasks[1].XP < 20 || tasks[1].XP > 120 {
		t.Fatalf("placeholder xp out of band: %d", tasks[1].XP)
	}
	for i, task := range tasks[1:] {
		if task.EstimatedTime != "2h30m" {
			t.Fatalf("placeholder %d should carry the band estimate, got %q", i+1, task.EstimatedTime)
		}
	}
}

func TestBuildCalendarTemplatesAdvanceOnStudyDaysOnly(t *testing.T) {
	// Two study days in a 7-day week: only two templates consumed.
	tasks, _ := BuildCalendar(sampleTemplates(5), 7, []string{"Mon", "Fri"}, mondayAnchor, "2-3")
	var study []Task
	for _, task := range tasks {
		if !task.IsRestDay {
			study = append(study, task)
		}
	}
	if len(study) != 2 {
		t.Fatalf("expected 2 study tasks, got %d", len(study))
	}
	if study[0].XP != 50 || study[1].XP != 60 {
		t.Fatalf("templates should be consumed in order: %d, %d", study[0].XP, study[1].XP)
	}
}

func TestParseEstimatedMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"2h", 120},
		{"90m", 90},
		{"2h30m", 150},
		{"1h 30m", 90},
		{"45min", 45},
		{"0h", 0},
		{"", 0},
		{"fast", 0},
		{"2-3", 0},
		{"90", 0},
	}
	for _, c := range cases {
		if got := ParseEstimatedMinutes(c.in); got != c.want {
			t.Fatalf("ParseEstimatedMinutes(%q)=%d, want %d", c.in, got, c.want)
		}
	}
}
