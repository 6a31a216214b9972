package interfaces

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/sebuszqo/BudgetPlanner/internal/budget/application"
	"github.com/sebuszqo/BudgetPlanner/internal/budget/domain"
)

type RuleServiceInterface interface {
	ListRules() ([]domain.Rule, error)
	GetSelectedRule(userID string) (*domain.Rule, *domain.Profile, error)
	SelectRule(userID, ruleID string, custom *application.CustomBreakdown) (*domain.Profile, error)
}

type RuleHandler struct {
	service      RuleServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string)
}

func NewRuleHandler(
	service RuleServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string),
) *RuleHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		log.Fatal("Service and response functions must not be nil")
		return nil
	}
	return &RuleHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *RuleHandler) ListRules(w http.ResponseWriter, r *http.Request) {
	rules, err := h.service.ListRules()
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve rules")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"rules":  rules,
	})
}

func (h *RuleHandler) GetSelectedRule(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	rule, profile, err := h.service.GetSelectedRule(userID)
	if err != nil {
		h.respondError(w, statusForError(err), err.Error())
		return
	}

	payload := map[string]interface{}{
		"status": "success",
		"rule":   rule,
	}
	if profile != nil {
		payload["breakdown"] = profile.Breakdown
		payload["isCustom"] = profile.IsCustom
	}
	h.respondJSON(w, http.StatusOK, payload)
}

type selectRuleRequest struct {
	RuleID          string                        `json:"ruleId"`
	CustomBreakdown *application.CustomBreakdown `json:"customBreakdown,omitempty"`
}

func (h *RuleHandler) SelectRule(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req selectRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.RuleID == "" {
		h.respondError(w, http.StatusBadRequest, "ruleId is required")
		return
	}

	profile, err := h.service.SelectRule(userID, req.RuleID, req.CustomBreakdown)
	if err != nil {
		respondServiceError(h.respondJSON, h.respondError, w, err, "Failed to save rule selection")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "success",
		"message":   "Rule and customization saved successfully.",
		"ruleId":    profile.RuleID,
		"breakdown": profile.Breakdown,
		"isCustom":  profile.IsCustom,
	})
}
