package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadolammi/studyplanapi/internal/planner"
	"github.com/muhammadolammi/studyplanapi/internal/planstore"
)

const (
	maxHistoryTurns = 10
	fallbackReply   = "I couldn't process that just now. Your plan is unchanged, please try again."
	noUpdatesNote   = "(No schedule updates were applied.)"
)

func (cfg *ApiConfig) handleChat(w http.ResponseWriter, r *http.Request) {
	req := ChatRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		respondWithError(w, http.StatusBadRequest, "message is required")
		return
	}
	planID, err := uuid.Parse(req.PlanID)
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

	userID := "anonymous"
	if plan.UserID != nil {
		userID = plan.UserID.String()
	}
	msg := chatMessage(plan, req)

	output, err := cfg.runAgent(r.Context(), cfg.ChatRunner, cfg.ChatAgentName, userID, msg)
	if err != nil {
		// The conversation must survive model failures.
		log.Printf("chat agent failed for plan %s: %v", planID, err)
		respondWithJSON(w, http.StatusOK, ChatResponse{
			Reply:          fallbackReply,
			AppliedUpdates: []planner.PlanUpdate{},
		})
		return
	}

	payload := chatPayload{}
	cleaned := CleanJson(output)
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		// Schema-violating output degrades to a plain reply.
		log.Printf("chat agent returned non-JSON for plan %s: %v", planID, err)
		payload = chatPayload{Reply: cleaned}
	}
	if strings.TrimSpace(payload.Reply) == "" {
		payload.Reply = fallbackReply
	}

	updates := planner.ParseUpdates(payload.PlanUpdates)
	applied := planner.ApplyUpdates(plan, updates, time.Now().UTC())

	response := ChatResponse{
		Reply:          payload.Reply,
		AppliedUpdates: applied,
	}

	if len(applied) == 0 {
		if len(updates) > 0 {
			response.Reply = payload.Reply + "\n\n" + noUpdatesNote
		}
		respondWithJSON(w, http.StatusOK, response)
		return
	}

	if err := cfg.Plans.Put(r.Context(), plan); err != nil {
		log.Printf("failed to store plan %s after chat updates: %v", plan.ID, err)
		response.Reply = payload.Reply + "\n\nYour schedule change could not be saved. Please retry."
		response.AppliedUpdates = []planner.PlanUpdate{}
		respondWithJSON(w, http.StatusOK, response)
		return
	}
	if err := cfg.publishPlanUpdate(plan.ID.String(), "updated", "schedule updated from chat"); err != nil {
		log.Println("failed to publish update:", err)
	}

	response.Plan = plan
	respondWithJSON(w, http.StatusOK, response)
}

// chatMessage assembles the agent input: recent history, the bounded plan
// digest, then the user's message. The digest is capped so context stays
// constant no matter how long the timeline is.
func chatMessage(plan *planner.StudyPlan, req ChatRequest) string {
	var b strings.Builder

	history := req.History
	if len(history) > maxHistoryTurns {
		history = history[len(history)-maxHistoryTurns:]
	}
	if len(history) > 0 {
		b.WriteString("Conversation so far:\n")
		for _, turn := range history {
			fmt.Fprintf(&b, "%s: %s\n", turn.Role, turn.Content)
		}
		b.WriteString("\n")
	}

	today := time.Now().UTC().Format("2006-01-02")
	b.WriteString("Upcoming plan (next tasks only):\n")
	b.WriteString(planDigest(plan, digestTaskLimit, today))
	b.WriteString("\n\nUser message:\n")
	b.WriteString(req.Message)
	return b.String()
}
