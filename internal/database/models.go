package database

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type StudyPlan struct {
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

type SkillAnalysis struct {
	ID                 uuid.UUID
	UserID             uuid.NullUUID
	ResumeText         string
	JobDescription     string
	MatchScore         sql.NullFloat64
	MatchingHardSkills json.RawMessage
	MatchingSoftSkills json.RawMessage
	MissingHardSkills  json.RawMessage
	MissingSoftSkills  json.RawMessage
	CreatedAt          time.Time
}
