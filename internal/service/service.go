package service

import (
	"context"

	"github.com/TPMYandTPTH/xRAF-Dashboard-sub000/internal/domain"
)

// OTPService manages one-time-passcode issuance and verification. One active
// session is kept per email; a new request supersedes the previous session.
type OTPService interface {
	// RequestCode issues a new passcode and hands it to the notifier. The
	// returned bool reports delivery: false means the notifier failed, but
	// the code was still issued and stays verifiable.
	RequestCode(ctx context.Context, email string) (bool, error)
	// VerifyCode checks a passcode attempt and returns a typed result;
	// verification outcomes are expected user-facing results, not errors.
	VerifyCode(ctx context.Context, email, code string) domain.VerifyResult
	// SweepExpired drops sessions past their expiry and returns how many
	// were removed.
	SweepExpired() int
}

// DashboardService builds the full dashboard view for one phone+email pair.
type DashboardService interface {
	GetDashboard(ctx context.Context, phone, email string) (*domain.DashboardView, error)
}

// ReferralFetcher is the HR webhook dependency of the dashboard service.
type ReferralFetcher interface {
	FetchReferrals(ctx context.Context, phone, email string) ([]domain.RawReferralRecord, error)
}
