package domain

import "time"

// OTPState tracks the lifecycle of one passcode session.
type OTPState string

const (
	OTPStateIdle     OTPState = "IDLE"
	OTPStatePending  OTPState = "PENDING"
	OTPStateVerified OTPState = "VERIFIED"
	OTPStateExpired  OTPState = "EXPIRED"
)

// VerifyReason is the typed outcome of a verification attempt. These are
// expected user-facing results, not errors.
type VerifyReason string

const (
	VerifyReasonOK              VerifyReason = "ok"
	VerifyReasonNoActiveRequest VerifyReason = "no_active_request"
	VerifyReasonExpired         VerifyReason = "expired"
	VerifyReasonMismatch        VerifyReason = "mismatch"
)

// VerifyResult reports whether a passcode attempt succeeded and why not.
type VerifyResult struct {
	Success bool         `json:"success"`
	Reason  VerifyReason `json:"reason"`
}

// OTPSession is one active passcode session for one email address. A session
// is single-use: verification invalidates the code.
type OTPSession struct {
	ID        string
	Email     string
	Code      string
	State     OTPState
	IssuedAt  time.Time
	ExpiresAt time.Time
	// DeliveryFailed records that the notifier reported failure for this
	// code. The code itself stays verifiable; see RequestCode.
	DeliveryFailed bool
}
