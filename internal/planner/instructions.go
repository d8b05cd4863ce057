package planner

import (
	"encoding/json"
	"time"
)

// UpdateReschedule is the only instruction type the interpreter accepts.
const UpdateReschedule = "reschedule_task"

// PlanUpdate is a structured edit instruction emitted by the assistant
// alongside its free-text reply. Instructions that do not resolve against
// the plan are dropped, never raised as errors: they come from a
// probabilistic generator and must not abort the conversation.
type PlanUpdate struct {
	Type     string `json:"type"`
	FromDate string `json:"fromDate"`
	ToDate   string `json:"toDate"`
	Notes    string `json:"notes,omitempty"`
}

// ParseUpdates filters a raw instruction array down to well-formed
// instructions of a known type. Malformed JSON yields an empty set.
func ParseUpdates(raw json.RawMessage) []PlanUpdate {
	if len(raw) == 0 {
		return nil
	}
	var candidates []PlanUpdate
	if err := json.Unmarshal(raw, &candidates); err != nil {
		return nil
	}
	updates := make([]PlanUpdate, 0, len(candidates))
	for _, u := range candidates {
		if u.Type != UpdateReschedule {
			continue
		}
		if u.FromDate == "" || u.ToDate == "" {
			continue
		}
		updates = append(updates, u)
	}
	return updates
}

// ApplyUpdates applies a batch of instructions to the plan and returns
// the subset that actually resolved. Metadata is recomputed once after
// the whole batch; the caller persists the plan once per batch.
func ApplyUpdates(p *StudyPlan, updates []PlanUpdate, now time.Time) []PlanUpdate {
	applied := make([]PlanUpdate, 0, len(updates))
	for _, u := range updates {
		if u.Type != UpdateReschedule {
			continue
		}
		if rescheduleTask(p, u.FromDate, u.ToDate) {
			applied = append(applied, u)
		}
	}
	if len(applied) > 0 {
		p.UpdatedAt = now
		p.RecomputeMetadata()
	}
	return applied
}

// rescheduleTask moves the task at fromDate onto toDate. The moved task
// arrives uncompleted (the work has not happened on its new date). The
// vacated slot receives the displaced task restamped with the old
// identity, or a synthesized rest entry if the destination was a rest
// day, so a rest day is never silently erased. A rest-day source does
// not resolve: there is no lesson there to move.
func rescheduleTask(p *StudyPlan, fromDate, toDate string) bool {
	tasks := p.PlanData.Tasks
	from := taskIndexByDate(tasks, fromDate)
	to := taskIndexByDate(tasks, toDate)
	if from < 0 || to < 0 || from == to {
		return false
	}

	src := tasks[from]
	dst := tasks[to]
	if src.IsRestDay {
		return false
	}

	moved := restamp(src, dst)
	moved.Completed = false
	moved.IsRestDay = false
	tasks[to] = moved

	if dst.IsRestDay {
		day, err := time.Parse(calendarDateLayout, src.CalendarDate)
		if err != nil {
			tasks[from] = Task{
				CalendarDate:  src.CalendarDate,
				DisplayDate:   src.DisplayDate,
				DayOfWeek:     src.DayOfWeek,
				Theme:         "Rest Day",
				Description:   "Rest and recharge",
				EstimatedTime: "0h",
				IsRestDay:     true,
			}
		} else {
			tasks[from] = RestTask(day)
		}
	} else {
		displaced := restamp(dst, src)
		displaced.Completed = false
		tasks[from] = displaced
	}
	return true
}

// restamp keeps content's lesson fields but stamps identity's date.
func restamp(content, identity Task) Task {
	content.CalendarDate = identity.CalendarDate
	content.DisplayDate = identity.DisplayDate
	content.DayOfWeek = identity.DayOfWeek
	return content
}

func taskIndexByDate(tasks []Task, date string) int {
	for i := range tasks {
		if tasks[i].CalendarDate == date {
			return i
		}
	}
	return -1
}
