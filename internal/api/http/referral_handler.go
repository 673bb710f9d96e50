package http

import (
	"encoding/json"
	"net/http"

	"github.com/TPMYandTPTH/xRAF-Dashboard-sub000/internal/logger"
	"github.com/TPMYandTPTH/xRAF-Dashboard-sub000/internal/service"
)

// ReferralHandler serves the dashboard fetch endpoint.
type ReferralHandler struct {
	dashboard service.DashboardService
}

func NewReferralHandler(dashboard service.DashboardService) *ReferralHandler {
	return &ReferralHandler{dashboard: dashboard}
}

type dashboardRequestBody struct {
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// GetDashboard fetches, enriches and aggregates the caller's referrals. An
// unreachable HR webhook is not an error here: the view comes back empty
// with a notice and status 200.
func (h *ReferralHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	var body dashboardRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.dashboard.GetDashboard(r.Context(), body.Phone, body.Email)
	if err != nil {
		if service.IsValidationError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		logger.Error("failed to build dashboard", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to build dashboard")
		return
	}

	writeJSON(w, http.StatusOK, view)
}
