// Package http wires the dashboard's JSON API onto a gorilla/mux router.
package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter assembles the API routes. The referrals endpoint sits behind the
// session-token guard; the OTP endpoints carry their own token checks.
func NewRouter(auth *AuthHandler, referrals *ReferralHandler, guard *AuthMiddleware) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestID)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/auth/otp/request", auth.RequestOTP).Methods(http.MethodPost)
	api.HandleFunc("/auth/otp/verify", auth.VerifyOTP).Methods(http.MethodPost)

	protected := api.PathPrefix("/referrals").Subrouter()
	protected.Use(guard.RequireSession)
	protected.HandleFunc("", referrals.GetDashboard).Methods(http.MethodPost)

	return r
}
