package planner

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Template is an abstract lesson task before it is stamped onto a
// calendar date. The curriculum generator (LLM or fallback) produces an
// ordered list of these.
type Template struct {
	Theme         string
	Description   string
	Resource      string
	EstimatedTime string
	XP            int
}

var defaultThemes = []string{
	"Foundations",
	"Core Skills",
	"Applied Practice",
	"Project Work",
	"Review & Reflection",
}

// DefaultTemplates synthesizes n placeholder lesson templates for a given
// hours-per-day band, used when the generative call fails or comes up
// short.
func DefaultTemplates(n int, hoursPerDay string) []Template {
	templates := make([]Template, 0, n)
	for k := 1; k <= n; k++ {
		templates = append(templates, placeholderTemplate(k, hoursPerDay))
	}
	return templates
}

// BandEstimate maps an availability band to a parseable per-day estimate.
func BandEstimate(hoursPerDay string) string {
	switch hoursPerDay {
	case "1-2":
		return "1h30m"
	case "2-3":
		return "2h30m"
	case "3-4":
		return "3h30m"
	case "4+":
		return "4h"
	default:
		return "1h"
	}
}

// BuildCalendar stamps templates onto days consecutive dates starting at
// anchor. Days whose weekday label is outside studyDays become zero-cost
// rest entries; an empty studyDays set means every day is a study day.
// Templates advance only on study days, and synthesized placeholders fill
// in once the list is exhausted. Always returns exactly days tasks.
func BuildCalendar(templates []Template, days int, studyDays []string, anchor time.Time, hoursPerDay string) ([]Task, Summary) {
	studySet := make(map[string]bool, len(studyDays))
	for _, d := range studyDays {
		studySet[d] = true
	}

	tasks := make([]Task, 0, max(days, 0))
	totalXP := 0
	totalMinutes := 0
	sessionCount := 0

	for offset := 0; offset < days; offset++ {
		day := anchor.AddDate(0, 0, offset)
		weekday := day.Format(weekdayLayout)

		if len(studySet) > 0 && !studySet[weekday] {
			tasks = append(tasks, RestTask(day))
			continue
		}

		var tpl Template
		if sessionCount < len(templates) {
			tpl = templates[sessionCount]
		} else {
			tpl = placeholderTemplate(sessionCount+1, hoursPerDay)
		}
		sessionCount++

		task := Task{
			CalendarDate:  day.Format(calendarDateLayout),
			DisplayDate:   day.Format(displayDateLayout),
			DayOfWeek:     weekday,
			Theme:         tpl.Theme,
			Description:   tpl.Description,
			Resource:      tpl.Resource,
			EstimatedTime: tpl.EstimatedTime,
			XP:            tpl.XP,
		}
		tasks = append(tasks, task)
		totalXP += task.XP
		totalMinutes += ParseEstimatedMinutes(task.EstimatedTime)
	}

	summary := Summary{
		TotalXP:    totalXP,
		TotalHours: math.Round(float64(totalMinutes)/60*10) / 10,
	}
	return tasks, summary
}

func placeholderTemplate(k int, hoursPerDay string) Template {
	theme := defaultThemes[(k-1)%len(defaultThemes)]
	return Template{
		Theme:         theme,
		Description:   fmt.Sprintf("%s: Study Session %d", theme, k),
		Resource:      "Recommended learning resources",
		EstimatedTime: BandEstimate(hoursPerDay),
		XP:            40 + ((k-1)%5)*10,
	}
}

// RestTask synthesizes the zero-cost entry for a non-study day.
func RestTask(day time.Time) Task {
	return Task{
		CalendarDate:  day.Format(calendarDateLayout),
		DisplayDate:   day.Format(displayDateLayout),
		DayOfWeek:     day.Format(weekdayLayout),
		Theme:         "Rest Day",
		Description:   "Rest and recharge",
		EstimatedTime: "0h",
		XP:            0,
		IsRestDay:     true,
	}
}

// ParseEstimatedMinutes parses per-task time estimates like "2h", "90m"
// or "2h30m" into minutes. Anything it cannot parse contributes 0.
func ParseEstimatedMinutes(s string) int {
	s = strings.ToLower(strings.TrimSpace(s))
	total := 0
	num := 0
	haveNum := false
	parsed := false

	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			num = num*10 + int(c-'0')
			haveNum = true
			i++
		case c == ' ':
			i++
		case c >= 'a' && c <= 'z':
			if !haveNum {
				return 0
			}
			// consume the whole unit word ("h", "m", "min", "hrs", ...)
			j := i
			for j < len(s) && s[j] >= 'a' && s[j] <= 'z' {
				j++
			}
			switch s[i] {
			case 'h':
				total += num * 60
			case 'm':
				total += num
			default:
				return 0
			}
			num = 0
			haveNum = false
			parsed = true
			i = j
		default:
			return 0
		}
	}
	if haveNum || !parsed {
		// a trailing bare number ("2-3", "90") has no unit
		return 0
	}
	return total
}
