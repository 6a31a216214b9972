package auth

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/sebuszqo/BudgetPlanner/internal/user"
)

type Handler struct {
	authService Service
}

func NewHandler(authService Service) *Handler {
	return &Handler{authService: authService}
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		log.Printf("JSON encoding error: %v", err)
		return
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Code     string `json:"code"`
}

func (h *Handler) handleLoginRequest(w http.ResponseWriter, r *http.Request, codeRequired bool) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "All fields are required")
		return
	}
	if codeRequired && req.Code == "" {
		respondError(w, http.StatusBadRequest, "Two-factor code is required")
		return
	}

	token, existingUser, err := h.authService.Login(req.Username, req.Password, req.Code)
	if err != nil {
		if errors.Is(err, ErrTwoFactorRequired) {
			respondJSON(w, http.StatusUnauthorized, map[string]interface{}{
				"status":              "error",
				"message":             err.Error(),
				"two_factor_required": true,
			})
			return
		}
		if errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrInvalidTwoFactorCode) {
			respondError(w, http.StatusUnauthorized, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "Could not log in")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Login successful",
		"token":   token,
		"user":    existingUser,
	})
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	h.handleLoginRequest(w, r, false)
}

// HandleVerifyTwoFactor is the second login step for accounts with 2FA
// enabled; same credentials, code mandatory.
func (h *Handler) HandleVerifyTwoFactor(w http.ResponseWriter, r *http.Request) {
	h.handleLoginRequest(w, r, true)
}

func (h *Handler) HandleRegisterTwoFactor(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	otpURI, secret, err := h.authService.RegisterTwoFactor(userID)
	if err != nil {
		if errors.Is(err, ErrTwoFactorAlreadyEnabled) {
			respondError(w, http.StatusConflict, err.Error())
			return
		}
		if errors.Is(err, user.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "Could not register two-factor auth")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data": map[string]string{
			"otp_uri": otpURI,
			"secret":  secret,
		},
	})
}

func (h *Handler) HandleVerifyTwoFactorCode(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Code == "" {
		respondError(w, http.StatusBadRequest, "Two-factor code is required")
		return
	}

	if err := h.authService.ConfirmTwoFactor(userID, req.Code); err != nil {
		switch {
		case errors.Is(err, ErrInvalidTwoFactorCode):
			respondError(w, http.StatusUnauthorized, err.Error())
		case errors.Is(err, ErrTwoFactorAlreadyEnabled):
			respondError(w, http.StatusConflict, err.Error())
		case errors.Is(err, ErrTwoFactorNotRegistered):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			respondError(w, http.StatusInternalServerError, "Could not verify two-factor code")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Two-factor auth enabled",
	})
}

func (h *Handler) HandleDisableTwoFactor(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Code == "" {
		respondError(w, http.StatusBadRequest, "Two-factor code is required")
		return
	}

	if err := h.authService.DisableTwoFactor(userID, req.Code); err != nil {
		switch {
		case errors.Is(err, ErrInvalidTwoFactorCode):
			respondError(w, http.StatusUnauthorized, err.Error())
		case errors.Is(err, ErrTwoFactorNotEnabled):
			respondError(w, http.StatusConflict, err.Error())
		default:
			respondError(w, http.StatusInternalServerError, "Could not disable two-factor auth")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Two-factor auth disabled",
	})
}
