package database

import (
	"context"

	"github.com/google/uuid"
)

const getSkillAnalysis = `-- name: GetSkillAnalysis :one
SELECT id, user_id, resume_text, job_description, match_score, matching_hard_skills, matching_soft_skills, missing_hard_skills, missing_soft_skills, created_at FROM skill_analyses WHERE id=$1
`

func (q *Queries) GetSkillAnalysis(ctx context.Context, id uuid.UUID) (SkillAnalysis, error) {
	row := q.db.QueryRowContext(ctx, getSkillAnalysis, id)
	var i SkillAnalysis
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.ResumeText,
		&i.JobDescription,
		&i.MatchScore,
		&i.MatchingHardSkills,
		&i.MatchingSoftSkills,
		&i.MissingHardSkills,
		&i.MissingSoftSkills,
		&i.CreatedAt,
	)
	return i, err
}
