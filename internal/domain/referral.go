package domain

import "time"

// RawReferralRecord is one record as returned by the HR webhook. The upstream
// guarantees neither ordering nor uniqueness, and any field may be absent or
// empty; absent fields are valid input and must default, never fail.
type RawReferralRecord struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Status           string `json:"status"`
	Source           string `json:"source"`
	UpdatedDate      string `json:"updatedDate"`
	Location         string `json:"location"`
	Nationality      string `json:"nationality"`
	AssessmentResult string `json:"assessmentResult,omitempty"`
}

// EnrichedReferral is the fully derived view of one raw record. It is
// constructed once per record immediately after a fetch and never mutated;
// a new fetch replaces the whole batch.
type EnrichedReferral struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	RawStatus   string      `json:"rawStatus"`
	Source      string      `json:"source"`
	Location    string      `json:"location"`
	Nationality string      `json:"nationality"`
	UpdatedDate time.Time   `json:"updatedDate"`
	DaysInStage int         `json:"daysInStage"`
	StatusGroup StatusGroup `json:"statusGroup"`
	StatusType  StatusType  `json:"statusType"`
	Stage       Stage       `json:"stage"`
	// IsPreviousCandidate marks records outside the tracked referral
	// program; previous candidates never count toward earnings.
	IsPreviousCandidate bool `json:"isPreviousCandidate"`
	NeedsAction         bool `json:"needsAction"`
}

// EarningsSummary is the earnings-table payload: eligible counts per payment
// tier, the totals, and their sum.
type EarningsSummary struct {
	AssessmentPassedCount   int `json:"assessmentPassedCount"`
	ProbationCompletedCount int `json:"probationCompletedCount"`
	AssessmentEarningsTotal int `json:"assessmentEarningsTotal"`
	ProbationEarningsTotal  int `json:"probationEarningsTotal"`
	GrandTotal              int `json:"grandTotal"`
}

// ReminderCandidate is one entry of the reminder list: an early-pipeline
// referral plus the outbound messaging deep link generated for it.
type ReminderCandidate struct {
	Referral     EnrichedReferral `json:"referral"`
	WhatsAppLink string           `json:"whatsAppLink"`
}

// DashboardView is the full response for one dashboard fetch.
type DashboardView struct {
	Referrals []EnrichedReferral  `json:"referrals"`
	Counts    []GroupCount        `json:"counts"`
	Earnings  EarningsSummary     `json:"earnings"`
	Reminders []ReminderCandidate `json:"reminders"`
	// Notice carries a non-blocking warning, e.g. when the HR webhook was
	// unreachable and an empty batch was substituted.
	Notice string `json:"notice,omitempty"`
}

// GroupCount is one chart slice: a status group and how many referrals
// classified into it. Emitted in DisplayOrder, zeros included.
type GroupCount struct {
	Group StatusGroup `json:"group"`
	Stage Stage       `json:"stage"`
	Count int         `json:"count"`
}
