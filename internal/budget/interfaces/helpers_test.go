package interfaces

import (
	"encoding/json"
	"net/http"
)

// Handler tests inject these instead of the helpers main wires in production,
// so assertions only depend on this package.
func testRespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func testRespondError(w http.ResponseWriter, status int, message string, errs ...[]string) {
	payload := map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	}
	if len(errs) > 0 {
		payload["errors"] = errs[0]
	}
	testRespondJSON(w, status, payload)
}

func newTestRuleHandler(service RuleServiceInterface) *RuleHandler {
	return NewRuleHandler(service, testRespondJSON, testRespondError)
}

func newTestCategoryHandler(service CategoryServiceInterface) *CategoryHandler {
	return NewCategoryHandler(service, testRespondJSON, testRespondError)
}
