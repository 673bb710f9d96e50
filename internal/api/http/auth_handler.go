package http

import (
	"encoding/json"
	"net/http"

	"github.com/TPMYandTPTH/xRAF-Dashboard-sub000/internal/domain"
	"github.com/TPMYandTPTH/xRAF-Dashboard-sub000/internal/logger"
	"github.com/TPMYandTPTH/xRAF-Dashboard-sub000/internal/security"
	"github.com/TPMYandTPTH/xRAF-Dashboard-sub000/internal/service"
)

// AuthHandler serves the OTP request/verify endpoints.
type AuthHandler struct {
	otp    service.OTPService
	tokens security.TokenManager
}

func NewAuthHandler(otp service.OTPService, tokens security.TokenManager) *AuthHandler {
	return &AuthHandler{otp: otp, tokens: tokens}
}

type otpRequestBody struct {
	Email string `json:"email"`
}

type otpRequestResponse struct {
	Sent         bool   `json:"sent"`
	PendingToken string `json:"pendingToken"`
}

// RequestOTP issues a passcode for the given email. Sent=false means the
// delivery channel failed; the caller may still verify a code obtained
// elsewhere, so a pending token is returned either way.
func (h *AuthHandler) RequestOTP(w http.ResponseWriter, r *http.Request) {
	var body otpRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sent, err := h.otp.RequestCode(r.Context(), body.Email)
	if err != nil {
		if service.IsValidationError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		logger.Error("failed to issue OTP", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to issue passcode")
		return
	}

	pending, err := h.tokens.GeneratePendingToken(body.Email)
	if err != nil {
		logger.Error("failed to sign pending token", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to issue passcode")
		return
	}

	writeJSON(w, http.StatusOK, otpRequestResponse{Sent: sent, PendingToken: pending})
}

type otpVerifyBody struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type otpVerifyResponse struct {
	Success      bool                `json:"success"`
	Reason       domain.VerifyReason `json:"reason"`
	SessionToken string              `json:"sessionToken,omitempty"`
}

// VerifyOTP checks a passcode attempt. The pending token from RequestOTP
// must accompany the call and its email must match; verification outcomes
// come back as typed results with status 200, not as errors.
func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		writeError(w, http.StatusUnauthorized, "missing pending token")
		return
	}
	claims, err := h.tokens.ValidateToken(token, security.TokenTypeOTPPending)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid or expired pending token")
		return
	}

	var body otpVerifyBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Email != claims.Email {
		writeError(w, http.StatusUnauthorized, "email does not match pending token")
		return
	}

	result := h.otp.VerifyCode(r.Context(), body.Email, body.Code)
	resp := otpVerifyResponse{Success: result.Success, Reason: result.Reason}
	if result.Success {
		session, err := h.tokens.GenerateSessionToken(body.Email)
		if err != nil {
			logger.Error("failed to sign session token", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to create session")
			return
		}
		resp.SessionToken = session
	}

	writeJSON(w, http.StatusOK, resp)
}
