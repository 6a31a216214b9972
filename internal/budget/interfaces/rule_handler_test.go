package interfaces

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sebuszqo/BudgetPlanner/internal/budget/domain"
	budgetErrors "github.com/sebuszqo/BudgetPlanner/internal/budget/errors"
	"github.com/stretchr/testify/assert"
)

func TestListRules(t *testing.T) {
	mockService := &MockRuleService{
		Rules: []domain.Rule{
			{ID: "50-30-20", Name: "50/30/20", DefaultBreakdown: domain.NewBreakdown([]string{"Needs", "Wants", "Savings"}, []int{50, 30, 20})},
			{ID: "80-20", Name: "80/20", DefaultBreakdown: domain.NewBreakdown([]string{"Needs", "Savings"}, []int{80, 20}), IsCustomizable: true},
		},
	}
	handler := newTestRuleHandler(mockService)

	req := httptest.NewRequest(http.MethodGet, "/api/rules", nil)
	w := httptest.NewRecorder()
	handler.ListRules(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response map[string]interface{}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	rules := response["rules"].([]interface{})
	assert.Len(t, rules, 2)
}

func TestSelectRule_Success(t *testing.T) {
	mockService := &MockRuleService{
		Profile: &domain.Profile{
			UserID:    "user-1",
			RuleID:    "80-20",
			Breakdown: domain.NewBreakdown([]string{"Essentials", "Investments"}, []int{75, 25}),
			IsCustom:  true,
		},
	}
	handler := newTestRuleHandler(mockService)

	body := `{"ruleId":"80-20","customBreakdown":{"categories":["Essentials","Investments"],"percentages":[75,25]}}`
	req := authedRequest(http.MethodPost, "/api/protected/rules/select", body)
	w := httptest.NewRecorder()
	handler.SelectRule(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response map[string]interface{}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, "80-20", response["ruleId"])
	assert.Equal(t, true, response["isCustom"])
}

func TestSelectRule_ValidationError(t *testing.T) {
	mockService := &MockRuleService{SelectedErr: budgetErrors.NewBreakdownSumError(101)}
	handler := newTestRuleHandler(mockService)

	body := `{"ruleId":"80-20","customBreakdown":{"categories":["A","B"],"percentages":[75,26]}}`
	req := authedRequest(http.MethodPost, "/api/protected/rules/select", body)
	w := httptest.NewRecorder()
	handler.SelectRule(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var response map[string]interface{}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, "percentages must sum to 100, got 101", response["message"])
}

func TestSelectRule_MissingRuleID(t *testing.T) {
	handler := newTestRuleHandler(&MockRuleService{})

	req := authedRequest(http.MethodPost, "/api/protected/rules/select", `{"customBreakdown":{"categories":["A"],"percentages":[100]}}`)
	w := httptest.NewRecorder()
	handler.SelectRule(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestSelectRule_UnknownRule(t *testing.T) {
	mockService := &MockRuleService{SelectedErr: budgetErrors.NewNotFoundError("rule")}
	handler := newTestRuleHandler(mockService)

	req := authedRequest(http.MethodPost, "/api/protected/rules/select", `{"ruleId":"90-10"}`)
	w := httptest.NewRecorder()
	handler.SelectRule(w, req)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestGetSelectedRule(t *testing.T) {
	mockService := &MockRuleService{
		Rules: []domain.Rule{
			{ID: "50-30-20", Name: "50/30/20", DefaultBreakdown: domain.NewBreakdown([]string{"Needs", "Wants", "Savings"}, []int{50, 30, 20})},
		},
		Profile: &domain.Profile{
			UserID:    "user-1",
			RuleID:    "50-30-20",
			Breakdown: domain.NewBreakdown([]string{"Needs", "Wants", "Savings"}, []int{50, 30, 20}),
		},
	}
	handler := newTestRuleHandler(mockService)

	req := authedRequest(http.MethodGet, "/api/protected/rules/selected", "")
	w := httptest.NewRecorder()
	handler.GetSelectedRule(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response map[string]interface{}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	rule := response["rule"].(map[string]interface{})
	assert.Equal(t, "50/30/20", rule["name"])
}
