package interfaces

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/sebuszqo/BudgetPlanner/internal/budget/domain"
)

type CategoryServiceInterface interface {
	CreateCategory(userID, name string, priority int, limit int64) (*domain.Category, error)
	AdjustAmount(userID, categoryID string, newAmount int64) (*domain.Category, error)
	DeleteCategory(userID, categoryID string) error
	ListCategories(userID string) ([]domain.Category, error)
	GetSummary(userID string) (*domain.Summary, error)
}

type CategoryHandler struct {
	service      CategoryServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string)
}

func NewCategoryHandler(
	service CategoryServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string),
) *CategoryHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		log.Fatal("Service and response functions must not be nil")
		return nil
	}
	return &CategoryHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

type createCategoryRequest struct {
	Name     string `json:"name"`
	Priority int    `json:"priority"`
	Limit    int64  `json:"limit"`
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req createCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.service.CreateCategory(userID, req.Name, req.Priority, req.Limit)
	if err != nil {
		respondServiceError(h.respondJSON, h.respondError, w, err, "Failed to create category")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":   "success",
		"message":  "Category successfully created.",
		"category": category,
	})
}

func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	categories, err := h.service.ListCategories(userID)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve categories")
		return
	}
	if categories == nil {
		categories = []domain.Category{}
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":     "success",
		"categories": categories,
	})
}

type adjustAmountRequest struct {
	Amount int64 `json:"amount"`
}

func (h *CategoryHandler) AdjustAmount(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	categoryID := r.PathValue("categoryID")
	if categoryID == "" {
		h.respondError(w, http.StatusBadRequest, "categoryID is required")
		return
	}

	var req adjustAmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.service.AdjustAmount(userID, categoryID, req.Amount)
	if err != nil {
		respondServiceError(h.respondJSON, h.respondError, w, err, "Failed to update category amount")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "success",
		"message":  "Category amount updated.",
		"category": category,
	})
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	categoryID := r.PathValue("categoryID")
	if categoryID == "" {
		h.respondError(w, http.StatusBadRequest, "categoryID is required")
		return
	}

	if err := h.service.DeleteCategory(userID, categoryID); err != nil {
		respondServiceError(h.respondJSON, h.respondError, w, err, "Failed to delete category")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Category deleted.",
	})
}

func (h *CategoryHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	summary, err := h.service.GetSummary(userID)
	if err != nil {
		respondServiceError(h.respondJSON, h.respondError, w, err, "Failed to compute summary")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"summary": summary,
	})
}
