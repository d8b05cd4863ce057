package planstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadolammi/studyplanapi/internal/database"
	"github.com/muhammadolammi/studyplanapi/internal/planner"
)

const dateLayout = "2006-01-02"

// Postgres is the durable primary store, backed by the study_plans table.
type Postgres struct {
	queries *database.Queries
}

func NewPostgres(queries *database.Queries) *Postgres {
	return &Postgres{queries: queries}
}

func (s *Postgres) Get(ctx context.Context, id uuid.UUID) (*planner.StudyPlan, error) {
	row, err := s.queries.GetStudyPlan(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading study plan from postgres: %w", err)
	}

	plan := &planner.StudyPlan{
		ID:          row.ID,
		AnalysisID:  row.AnalysisID,
		Status:      row.Status,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
		StartDate:   row.StartDate.Format(dateLayout),
		EndDate:     row.EndDate.Format(dateLayout),
		TotalDays:   int(row.TotalDays),
		HoursPerDay: row.HoursPerDay,
	}
	if row.UserID.Valid {
		userID := row.UserID.UUID
		plan.UserID = &userID
	}
	if err := json.Unmarshal(row.StudyDays, &plan.StudyDays); err != nil {
		return nil, fmt.Errorf("decoding study days: %w", err)
	}
	if err := json.Unmarshal(row.PlanData, &plan.PlanData); err != nil {
		return nil, fmt.Errorf("decoding plan data: %w", err)
	}
	if err := json.Unmarshal(row.Metadata, &plan.Metadata); err != nil {
		return nil, fmt.Errorf("decoding plan metadata: %w", err)
	}
	return plan, nil
}

func (s *Postgres) Put(ctx context.Context, plan *planner.StudyPlan) error {
	studyDays, err := json.Marshal(plan.StudyDays)
	if err != nil {
		return fmt.Errorf("encoding study days: %w", err)
	}
	planData, err := json.Marshal(plan.PlanData)
	if err != nil {
		return fmt.Errorf("encoding plan data: %w", err)
	}
	metadata, err := json.Marshal(plan.Metadata)
	if err != nil {
		return fmt.Errorf("encoding plan metadata: %w", err)
	}

	startDate, err := time.Parse(dateLayout, plan.StartDate)
	if err != nil {
		return fmt.Errorf("invalid start date %q: %w", plan.StartDate, err)
	}
	endDate, err := time.Parse(dateLayout, plan.EndDate)
	if err != nil {
		return fmt.Errorf("invalid end date %q: %w", plan.EndDate, err)
	}

	var userID uuid.NullUUID
	if plan.UserID != nil {
		userID = uuid.NullUUID{UUID: *plan.UserID, Valid: true}
	}

	err = s.queries.UpsertStudyPlan(ctx, database.UpsertStudyPlanParams{
		ID:          plan.ID,
		UserID:      userID,
		AnalysisID:  plan.AnalysisID,
		Status:      plan.Status,
		CreatedAt:   plan.CreatedAt,
		UpdatedAt:   plan.UpdatedAt,
		StartDate:   startDate,
		EndDate:     endDate,
		TotalDays:   int32(plan.TotalDays),
		HoursPerDay: plan.HoursPerDay,
		StudyDays:   studyDays,
		PlanData:    planData,
		Metadata:    metadata,
	})
	if err != nil {
		return fmt.Errorf("writing study plan to postgres: %w", err)
	}
	return nil
}
