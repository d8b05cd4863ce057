package planner

import "time"

// SetTaskCompletion sets the completion flag on the task at index and
// recomputes metadata. Rest days are rejected with ErrRestDay, which is
// distinct from an out-of-range index. Re-setting an already-matching
// value still succeeds and bumps UpdatedAt.
func (p *StudyPlan) SetTaskCompletion(index int, completed bool, now time.Time) error {
	if index < 0 || index >= len(p.PlanData.Tasks) {
		return ErrTaskNotFound
	}
	task := &p.PlanData.Tasks[index]
	if task.IsRestDay {
		return ErrRestDay
	}
	task.Completed = completed
	p.UpdatedAt = now
	p.RecomputeMetadata()
	return nil
}
