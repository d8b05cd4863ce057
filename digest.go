package main

import (
	"fmt"
	"strings"

	"github.com/muhammadolammi/studyplanapi/internal/planner"
)

// digestTaskLimit bounds how many tasks the chat agent ever sees.
const digestTaskLimit = 14

// planDigest renders a compact view of the next tasks on or after today.
// Once the plan is fully in the past, the tail of the calendar is shown
// instead so the agent still has dates to reference.
func planDigest(plan *planner.StudyPlan, limit int, today string) string {
	tasks := plan.PlanData.Tasks

	start := len(tasks)
	for i, task := range tasks {
		if task.CalendarDate >= today {
			start = i
			break
		}
	}
	if start == len(tasks) {
		start = len(tasks) - limit
		if start < 0 {
			start = 0
		}
	}

	upcoming := tasks[start:]
	if len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}

	var b strings.Builder
	for _, task := range upcoming {
		if task.IsRestDay {
			fmt.Fprintf(&b, "%s (%s): rest day\n", task.CalendarDate, task.DayOfWeek)
			continue
		}
		status := "pending"
		if task.Completed {
			status = "done"
		}
		fmt.Fprintf(&b, "%s (%s): %s - %s [%s, %dxp, %s]\n",
			task.CalendarDate, task.DayOfWeek, task.Theme, task.Description,
			task.EstimatedTime, task.XP, status)
	}
	if b.Len() == 0 {
		return "(the plan has no tasks)"
	}
	return strings.TrimRight(b.String(), "\n")
}
