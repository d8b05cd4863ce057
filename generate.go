package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/muhammadolammi/studyplanapi/internal/database"
	"github.com/muhammadolammi/studyplanapi/internal/planner"
	"google.golang.org/adk/agent"
	"google.golang.org/adk/runner"
	"google.golang.org/adk/session"
	"google.golang.org/genai"
)

const promptExcerptLimit = 2000

type analysisContext struct {
	UserID             *uuid.UUID
	AnalysisID         uuid.UUID
	MatchScore         int
	JobDescription     string
	ResumeText         string
	MatchingHardSkills []string
	MatchingSoftSkills []string
	MissingHardSkills  []string
	MissingSoftSkills  []string
}

func buildAnalysisContext(row database.SkillAnalysis) (*analysisContext, error) {
	if strings.TrimSpace(row.ResumeText) == "" {
		return nil, fmt.Errorf("resume text is missing for this analysis")
	}
	if strings.TrimSpace(row.JobDescription) == "" {
		return nil, fmt.Errorf("job description is missing for this analysis")
	}

	actx := &analysisContext{
		AnalysisID:         row.ID,
		JobDescription:     row.JobDescription,
		ResumeText:         row.ResumeText,
		MatchingHardSkills: decodeSkillList(row.MatchingHardSkills),
		MatchingSoftSkills: decodeSkillList(row.MatchingSoftSkills),
		MissingHardSkills:  decodeSkillList(row.MissingHardSkills),
		MissingSoftSkills:  decodeSkillList(row.MissingSoftSkills),
	}
	if row.UserID.Valid {
		userID := row.UserID.UUID
		actx.UserID = &userID
	}
	if row.MatchScore.Valid {
		actx.MatchScore = int(math.Round(row.MatchScore.Float64))
	}
	return actx, nil
}

func decodeSkillList(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var skills []string
	if err := json.Unmarshal(raw, &skills); err != nil {
		return nil
	}
	return skills
}

// runAgent runs one message through an agent session and returns the
// final text output. The session is created and deleted per call.
func (cfg *ApiConfig) runAgent(ctx context.Context, agentRunner *runner.Runner, agentName, userID, msg string) (string, error) {
	agentSession, err := cfg.AgentSessionService.Create(ctx, &session.CreateRequest{
		AppName:   agentName,
		UserID:    userID,
		SessionID: uuid.NewString(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create agent session: %w", err)
	}
	defer func() {
		err := cfg.AgentSessionService.Delete(ctx, &session.DeleteRequest{
			AppName:   agentSession.Session.AppName(),
			UserID:    agentSession.Session.UserID(),
			SessionID: agentSession.Session.ID(),
		})
		if err != nil {
			log.Printf("failed to delete agent session: %v", err)
		}
	}()

	return retry(2, func() (string, error) {
		stream := agentRunner.Run(ctx, agentSession.Session.UserID(), agentSession.Session.ID(), &genai.Content{
			Role: "user",
			Parts: []*genai.Part{
				{Text: msg},
			},
		}, agent.RunConfig{})

		var output string
		for event, err := range stream {
			if err != nil {
				return "", err
			}
			if event != nil && event.IsFinalResponse() && len(event.Content.Parts) > 0 {
				output = event.Content.Parts[0].Text
			}
		}

		if output == "" {
			return "", fmt.Errorf("empty agent response")
		}
		return output, nil
	})
}

// callPlanAgent asks the plan agent for a curriculum. Any failure returns
// an error; the caller substitutes deterministic templates instead.
func (cfg *ApiConfig) callPlanAgent(ctx context.Context, actx *analysisContext, req GeneratePlanRequest, sessions int) (*planPayload, error) {
	userID := "anonymous"
	if actx.UserID != nil {
		userID = actx.UserID.String()
	}

	msg := fmt.Sprintf(
		"Target Job Description:\n%s\n\nCandidate Resume Excerpt:\n%s\n\nCurrent Skills:\n- Hard Skills: %s\n- Soft Skills: %s\n\nSkill Gaps To Close:\n- Hard Skills: %s\n- Soft Skills: %s\n\nAvailability:\n- Hours per day: %s\n- Study days per week: %s\n- Timeline: %d days\n\nProvide exactly %d lesson tasks.",
		excerpt(actx.JobDescription),
		excerpt(actx.ResumeText),
		skillListOrNone(actx.MatchingHardSkills),
		skillListOrNone(actx.MatchingSoftSkills),
		skillListOrNone(actx.MissingHardSkills),
		skillListOrNone(actx.MissingSoftSkills),
		req.HoursPerDay,
		strings.Join(req.StudyDays, ", "),
		req.Timeline,
		sessions,
	)

	output, err := cfg.runAgent(ctx, cfg.PlanRunner, cfg.PlanAgentName, userID, msg)
	if err != nil {
		return nil, err
	}

	payload := &planPayload{}
	if err := json.Unmarshal([]byte(CleanJson(output)), payload); err != nil {
		return nil, fmt.Errorf("json unmarshal error: %w", err)
	}
	if len(payload.Tasks) == 0 {
		return nil, fmt.Errorf("agent returned no lesson tasks")
	}
	return payload, nil
}

func excerpt(s string) string {
	if len(s) > promptExcerptLimit {
		return s[:promptExcerptLimit]
	}
	return s
}

func skillListOrNone(skills []string) string {
	if len(skills) == 0 {
		return "None"
	}
	return strings.Join(skills, ", ")
}

// templatesFromPayload coerces the agent's loosely typed lesson tasks
// into scheduler templates.
func templatesFromPayload(payload *planPayload, hoursPerDay string) []planner.Template {
	templates := make([]planner.Template, 0, len(payload.Tasks))
	for _, t := range payload.Tasks {
		theme := t.Theme
		if theme == "" {
			theme = "Focused Study"
		}
		description := t.Task
		if description == "" {
			description = "Learning task"
		}
		estTime := t.EstTime
		if estTime == "" {
			estTime = planner.BandEstimate(hoursPerDay)
		}
		templates = append(templates, planner.Template{
			Theme:         theme,
			Description:   description,
			Resource:      resourceString(t.Resources),
			EstimatedTime: estTime,
			XP:            xpValue(t.XP),
		})
	}
	return templates
}

func skillsFromPayload(payload *planPayload) []planner.Skill {
	skills := make([]planner.Skill, 0, len(payload.Skills))
	for _, s := range payload.Skills {
		name := s.Name
		if name == "" {
			name = "Skill"
		}
		priority := s.Priority
		if priority == "" {
			priority = "Medium"
		}
		estimatedTime := s.EstimatedTime
		if estimatedTime == "" {
			estimatedTime = "10 hours"
		}
		skills = append(skills, planner.Skill{
			Name:          name,
			Priority:      priority,
			EstimatedTime: estimatedTime,
			Resources:     resourceList(s.Resources),
		})
	}
	return skills
}

// defaultSkills builds the fallback skills list from the analysis's top
// missing hard skills.
func defaultSkills(actx *analysisContext) []planner.Skill {
	missing := actx.MissingHardSkills
	if len(missing) > 5 {
		missing = missing[:5]
	}
	skills := make([]planner.Skill, 0, len(missing))
	for _, name := range missing {
		skills = append(skills, planner.Skill{
			Name:          name,
			Priority:      "High",
			EstimatedTime: "12 hours",
			Resources:     []string{"Official Documentation", "Recommended Course"},
		})
	}
	return skills
}

func resourceString(v any) string {
	switch value := v.(type) {
	case string:
		if value == "" {
			return "Suggested resources"
		}
		return value
	case []any:
		parts := make([]string, 0, len(value))
		for _, item := range value {
			if s, ok := item.(string); ok {
				parts = append(parts, s)
			}
		}
		if len(parts) == 0 {
			return "Suggested resources"
		}
		return strings.Join(parts, ", ")
	default:
		return "Suggested resources"
	}
}

func resourceList(v any) []string {
	switch value := v.(type) {
	case string:
		if value == "" {
			return []string{}
		}
		return []string{value}
	case []any:
		parts := make([]string, 0, len(value))
		for _, item := range value {
			if s, ok := item.(string); ok {
				parts = append(parts, s)
			}
		}
		return parts
	default:
		return []string{}
	}
}

func xpValue(v any) int {
	switch value := v.(type) {
	case float64:
		if value > 0 {
			return int(value)
		}
	case string:
		if xp, err := strconv.Atoi(value); err == nil && xp > 0 {
			return xp
		}
	}
	return 60
}
