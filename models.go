package main

import (
	"encoding/json"

	"github.com/muhammadolammi/studyplanapi/internal/database"
	"github.com/muhammadolammi/studyplanapi/internal/planner"
	"github.com/muhammadolammi/studyplanapi/internal/planstore"
	"github.com/streadway/amqp"
	"google.golang.org/adk/runner"
	"google.golang.org/adk/session"
)

type R2Config struct {
	AccountID string
	Bucket    string
	AccessKey string
	SecretKey string
}

type ApiConfig struct {
	DB                  *database.Queries
	Plans               planstore.Store
	RabbitConn          *amqp.Connection
	PlanRunner          *runner.Runner
	ChatRunner          *runner.Runner
	AgentSessionService session.Service
	PlanAgentName       string
	ChatAgentName       string
	Port                string
}

type GeneratePlanRequest struct {
	AnalysisID     string   `json:"analysisId"`
	HoursPerDay    string   `json:"hoursPerDay"`
	Timeline       int      `json:"timeline"`
	StudyDays      []string `json:"studyDays"`
	JobDescription string   `json:"jobDescription,omitempty"`
}

type CompleteTaskRequest struct {
	Completed *bool `json:"completed"`
}

type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	PlanID  string     `json:"planId"`
	Message string     `json:"message"`
	History []ChatTurn `json:"history,omitempty"`
}

type ChatResponse struct {
	Reply          string               `json:"reply"`
	AppliedUpdates []planner.PlanUpdate `json:"appliedUpdates"`
	Plan           *planner.StudyPlan   `json:"plan,omitempty"`
}

// planPayload is the JSON shape the plan agent is prompted to return.
// Fields arrive loosely typed and are coerced before they enter the
// domain model.
type planPayload struct {
	Skills []skillPayload    `json:"skills"`
	Tasks  []templatePayload `json:"tasks"`
	Phases []planner.Phase   `json:"phases"`
}

type skillPayload struct {
	Name          string `json:"name"`
	Priority      string `json:"priority"`
	EstimatedTime string `json:"estimatedTime"`
	Resources     any    `json:"resources"`
}

type templatePayload struct {
	Theme     string `json:"theme"`
	Task      string `json:"task"`
	Resources any    `json:"resources"`
	EstTime   string `json:"estTime"`
	XP        any    `json:"xp"`
}

// chatPayload is the JSON shape the chat agent is prompted to return.
type chatPayload struct {
	Reply       string          `json:"reply"`
	PlanUpdates json.RawMessage `json:"planUpdates"`
}
