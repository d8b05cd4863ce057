package database

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const upsertStudyPlan = `-- name: UpsertStudyPlan :exec
INSERT INTO study_plans (
id, user_id, analysis_id, status, created_at, updated_at, start_date, end_date, total_days, hours_per_day, study_days, plan_data, metadata)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
ON CONFLICT (id)
DO UPDATE SET
    status = EXCLUDED.status,
    updated_at = EXCLUDED.updated_at,
    plan_data = EXCLUDED.plan_data,
    metadata = EXCLUDED.metadata
`

type UpsertStudyPlanParams struct {
	ID          uuid.UUID
	UserID      uuid.NullUUID
	AnalysisID  uuid.UUID
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	StartDate   time.Time
	EndDate     time.Time
	TotalDays   int32
	HoursPerDay string
	StudyDays   json.RawMessage
	PlanData    json.RawMessage
	Metadata    json.RawMessage
}

func (q *Queries) UpsertStudyPlan(ctx context.Context, arg UpsertStudyPlanParams) error {
	_, err := q.db.ExecContext(ctx, upsertStudyPlan,
		arg.ID,
		arg.UserID,
		arg.AnalysisID,
		arg.Status,
		arg.CreatedAt,
		arg.UpdatedAt,
		arg.StartDate,
		arg.EndDate,
		arg.TotalDays,
		arg.HoursPerDay,
		arg.StudyDays,
		arg.PlanData,
		arg.Metadata,
	)
	return err
}

const getStudyPlan = `-- name: GetStudyPlan :one
SELECT id, user_id, analysis_id, status, created_at, updated_at, start_date, end_date, total_days, hours_per_day, study_days, plan_data, metadata FROM study_plans WHERE id=$1
`

func (q *Queries) GetStudyPlan(ctx context.Context, id uuid.UUID) (StudyPlan, error) {
	row := q.db.QueryRowContext(ctx, getStudyPlan, id)
	var i StudyPlan
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.AnalysisID,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.StartDate,
		&i.EndDate,
		&i.TotalDays,
		&i.HoursPerDay,
		&i.StudyDays,
		&i.PlanData,
		&i.Metadata,
	)
	return i, err
}
