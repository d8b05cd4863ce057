package main

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadolammi/studyplanapi/internal/planner"
	"github.com/muhammadolammi/studyplanapi/internal/planstore"
)

var hoursPerDayBands = []string{"1-2", "2-3", "3-4", "4+"}

const maxTimelineDays = 365

func (cfg *ApiConfig) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("POST /study-plan/generate", cfg.handleGeneratePlan)
	mux.HandleFunc("GET /study-plan/{planID}", cfg.handleGetPlan)
	mux.HandleFunc("PATCH /study-plan/{planID}/tasks/{taskIndex}/complete", cfg.handleCompleteTask)
	mux.HandleFunc("POST /chat", cfg.handleChat)
	return mux
}

func validateGenerateRequest(req GeneratePlanRequest) string {
	if req.AnalysisID == "" {
		return "analysisId is required"
	}
	if _, err := uuid.Parse(req.AnalysisID); err != nil {
		return "analysisId must be a valid id"
	}
	if req.HoursPerDay == "" {
		return "hoursPerDay is required"
	}
	if !slices.Contains(hoursPerDayBands, req.HoursPerDay) {
		return "hoursPerDay must be one of 1-2, 2-3, 3-4, 4+"
	}
	if req.Timeline <= 0 {
		return "timeline must be greater than 0"
	}
	if req.Timeline > maxTimelineDays {
		return "timeline cannot exceed 365 days"
	}
	if len(req.StudyDays) == 0 {
		return "studyDays cannot be empty"
	}
	for _, day := range req.StudyDays {
		if !slices.Contains(planner.WeekdayLabels, day) {
			return "studyDays must use weekday labels Mon..Sun"
		}
	}
	return ""
}

func (cfg *ApiConfig) handleGeneratePlan(w http.ResponseWriter, r *http.Request) {
	req := GeneratePlanRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateGenerateRequest(req); msg != "" {
		respondWithError(w, http.StatusBadRequest, msg)
		return
	}

	analysisID, _ := uuid.Parse(req.AnalysisID)
	row, err := cfg.DB.GetSkillAnalysis(r.Context(), analysisID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondWithError(w, http.StatusNotFound, "Analysis not found")
			return
		}
		log.Printf("error loading analysis %s: %v", analysisID, err)
		respondWithError(w, http.StatusInternalServerError, "error loading analysis")
		return
	}

	actx, err := buildAnalysisContext(row)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.JobDescription != "" {
		actx.JobDescription = req.JobDescription
	}

	now := time.Now().UTC()
	anchor := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	sessions := studySessionCount(req.Timeline, req.StudyDays, anchor)

	var templates []planner.Template
	var skills []planner.Skill
	var phases []planner.Phase

	payload, err := cfg.callPlanAgent(r.Context(), actx, req, sessions)
	if err != nil {
		// Degrade to the deterministic curriculum; a generate request
		// always yields a complete plan.
		log.Printf("plan agent failed for analysis %s, using fallback templates: %v", analysisID, err)
		templates = planner.DefaultTemplates(sessions, req.HoursPerDay)
		skills = defaultSkills(actx)
	} else {
		templates = templatesFromPayload(payload, req.HoursPerDay)
		skills = skillsFromPayload(payload)
		phases = payload.Phases
	}

	plan := planner.NewStudyPlan(analysisID, actx.UserID, req.HoursPerDay, req.StudyDays, req.Timeline, templates, skills, phases, anchor, now)

	if err := cfg.Plans.Put(r.Context(), plan); err != nil {
		// The plan is still returned; the caller can retry persistence
		// by regenerating.
		log.Printf("failed to store plan %s: %v", plan.ID, err)
	}
	if err := cfg.publishPlanUpdate(plan.ID.String(), "created", "study plan generated"); err != nil {
		log.Println("failed to publish update:", err)
	}

	respondWithJSON(w, http.StatusCreated, plan)
}

// studySessionCount is how many real study days the timeline contains,
// i.e. how many lesson templates the scheduler will consume.
func studySessionCount(timeline int, studyDays []string, anchor time.Time) int {
	studySet := make(map[string]bool, len(studyDays))
	for _, d := range studyDays {
		studySet[d] = true
	}
	count := 0
	for offset := 0; offset < timeline; offset++ {
		weekday := anchor.AddDate(0, 0, offset).Format("Mon")
		if len(studySet) == 0 || studySet[weekday] {
			count++
		}
	}
	return count
}

// requesterID resolves the authenticated identity, if any. Auth itself
// happens upstream; this service only sees the resolved id.
func requesterID(r *http.Request) *uuid.UUID {
	header := r.Header.Get("X-User-ID")
	if header == "" {
		return nil
	}
	id, err := uuid.Parse(header)
	if err != nil {
		return nil
	}
	return &id
}

// loadPlanForRequest fetches a plan and enforces the access model: plans
// without an owner are capability-based (anyone holding the id), while
// owner-bound plans require the matching identity. A mismatch reads the
// same as a missing plan.
func (cfg *ApiConfig) loadPlanForRequest(r *http.Request, planID uuid.UUID) (*planner.StudyPlan, error) {
	plan, err := cfg.Plans.Get(r.Context(), planID)
	if err != nil {
		return nil, err
	}
	if plan.UserID != nil {
		requester := requesterID(r)
		if requester == nil || *requester != *plan.UserID {
			return nil, planstore.ErrNotFound
		}
	}
	return plan, nil
}

func (cfg *ApiConfig) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	planID, err := uuid.Parse(r.PathValue("planID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid plan id")
		return
	}

	plan, err := cfg.loadPlanForRequest(r, planID)
	if err != nil {
		if errors.Is(err, planstore.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "No study plan yet. Generate one to get started.")
			return
		}
		log.Printf("error loading plan %s: %v", planID, err)
		respondWithError(w, http.StatusInternalServerError, "error loading study plan")
		return
	}
	respondWithJSON(w, http.StatusOK, plan)
}

func (cfg *ApiConfig) handleCompleteTask(w http.ResponseWriter, r *http.Request) {
	planID, err := uuid.Parse(r.PathValue("planID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid plan id")
		return
	}
	taskIndex, err := strconv.Atoi(r.PathValue("taskIndex"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid task index")
		return
	}
	req := CompleteTaskRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Completed == nil {
		respondWithError(w, http.StatusBadRequest, "completed is required")
		return
	}

	plan, err := cfg.loadPlanForRequest(r, planID)
	if err != nil {
		if errors.Is(err, planstore.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "No study plan yet. Generate one to get started.")
			return
		}
		log.Printf("error loading plan %s: %v", planID, err)
		respondWithError(w, http.StatusInternalServerError, "error loading study plan")
		return
	}

	if err := plan.SetTaskCompletion(taskIndex, *req.Completed, time.Now().UTC()); err != nil {
		switch {
		case errors.Is(err, planner.ErrTaskNotFound):
			respondWithError(w, http.StatusNotFound, "Task not found")
		case errors.Is(err, planner.ErrRestDay):
			respondWithError(w, http.StatusBadRequest, "That day is a rest day and cannot be completed.")
		default:
			respondWithError(w, http.StatusInternalServerError, "error updating task")
		}
		return
	}

	if err := cfg.Plans.Put(r.Context(), plan); err != nil {
		log.Printf("failed to store plan %s: %v", plan.ID, err)
		respondWithError(w, http.StatusInternalServerError, "Update failed. Please retry.")
		return
	}
	if err := cfg.publishPlanUpdate(plan.ID.String(), "updated", "task completion updated"); err != nil {
		log.Println("failed to publish update:", err)
	}

	respondWithJSON(w, http.StatusOK, plan)
}
