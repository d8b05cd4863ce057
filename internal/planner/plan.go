package planner

import (
	"math"
	"time"

	"github.com/google/uuid"
)

const (
	calendarDateLayout = "2006-01-02"
	displayDateLayout  = "Jan 02"
	weekdayLayout      = "Mon"
)

// WeekdayLabels are the only study-day labels the API accepts.
var WeekdayLabels = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

type StudyPlan struct {
	ID          uuid.UUID  `json:"id"`
	UserID      *uuid.UUID `json:"userId"`
	AnalysisID  uuid.UUID  `json:"analysisId"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	StartDate   string     `json:"startDate"`
	EndDate     string     `json:"endDate"`
	TotalDays   int        `json:"totalDays"`
	HoursPerDay string     `json:"hoursPerDay"`
	StudyDays   []string   `json:"studyDays"`
	PlanData    PlanData   `json:"planData"`
	Metadata    Metadata   `json:"metadata"`
}

type PlanData struct {
	Skills  []Skill `json:"skills"`
	Tasks   []Task  `json:"tasks"`
	Phases  []Phase `json:"phases"`
	Summary Summary `json:"summary"`
}

// Task is one calendar day of a plan. CalendarDate (YYYY-MM-DD) is the
// canonical key used by reschedule instructions.
type Task struct {
	CalendarDate  string `json:"calendarDate"`
	DisplayDate   string `json:"displayDate"`
	DayOfWeek     string `json:"dayOfWeek"`
	Theme         string `json:"theme"`
	Description   string `json:"description"`
	Resource      string `json:"resource"`
	EstimatedTime string `json:"estimatedTime"`
	XP            int    `json:"xp"`
	Completed     bool   `json:"completed"`
	IsRestDay     bool   `json:"isRestDay"`
}

type Skill struct {
	Name          string   `json:"name"`
	Priority      string   `json:"priority"`
	EstimatedTime string   `json:"estimatedTime"`
	Resources     []string `json:"resources"`
}

type Phase struct {
	Range [2]int `json:"range"`
	Label string `json:"label"`
	Color string `json:"color"`
}

type Summary struct {
	TotalXP         int     `json:"totalXP"`
	TotalHours      float64 `json:"totalHours"`
	CurrentProgress int     `json:"currentProgress"`
}

// Metadata holds aggregates derived from the task list. It is recomputed
// on every mutation and never stored apart from the tasks.
type Metadata struct {
	Progress       int `json:"progress"`
	TotalXP        int `json:"totalXP"`
	CompletedTasks int `json:"completedTasks"`
}

// RecomputeMetadata rebuilds the derived aggregates from the task list.
// Progress is measured against non-rest tasks only; TotalXP here is XP
// earned so far, not the schedule-wide total in PlanData.Summary.
func (p *StudyPlan) RecomputeMetadata() {
	completed := 0
	nonRest := 0
	earned := 0
	for _, t := range p.PlanData.Tasks {
		if !t.IsRestDay {
			nonRest++
		}
		if t.Completed {
			completed++
			if !t.IsRestDay {
				earned += t.XP
			}
		}
	}
	progress := 0
	if nonRest > 0 {
		progress = int(math.Round(float64(completed) / float64(nonRest) * 100))
	}
	p.Metadata = Metadata{
		Progress:       progress,
		TotalXP:        earned,
		CompletedTasks: completed,
	}
}

// NewStudyPlan builds a complete plan anchored at anchor's date. Templates
// are consumed by the calendar builder; skills and phases pass through,
// with phases defaulting to thirds when empty.
func NewStudyPlan(analysisID uuid.UUID, userID *uuid.UUID, hoursPerDay string, studyDays []string, timeline int, templates []Template, skills []Skill, phases []Phase, anchor, now time.Time) *StudyPlan {
	tasks, summary := BuildCalendar(templates, timeline, studyDays, anchor, hoursPerDay)
	if len(phases) == 0 {
		phases = DefaultPhases(timeline)
	}
	if skills == nil {
		skills = []Skill{}
	}

	endDate := anchor
	if timeline > 0 {
		endDate = anchor.AddDate(0, 0, timeline-1)
	}

	plan := &StudyPlan{
		ID:          uuid.New(),
		UserID:      userID,
		AnalysisID:  analysisID,
		Status:      "active",
		CreatedAt:   now,
		UpdatedAt:   now,
		StartDate:   anchor.Format(calendarDateLayout),
		EndDate:     endDate.Format(calendarDateLayout),
		TotalDays:   timeline,
		HoursPerDay: hoursPerDay,
		StudyDays:   studyDays,
		PlanData: PlanData{
			Skills:  skills,
			Tasks:   tasks,
			Phases:  phases,
			Summary: summary,
		},
	}
	plan.RecomputeMetadata()
	return plan
}

// DefaultPhases splits n days into thirds.
func DefaultPhases(n int) []Phase {
	if n <= 0 {
		return []Phase{}
	}
	return []Phase{
		{Range: [2]int{0, max(0, n/3)}, Label: "Foundations", Color: "purple"},
		{Range: [2]int{max(0, n/3) + 1, max(0, n*2/3)}, Label: "Application", Color: "blue"},
		{Range: [2]int{max(0, n*2/3) + 1, n - 1}, Label: "Project", Color: "green"},
	}
}
