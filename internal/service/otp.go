package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/TPMYandTPTH/xRAF-Dashboard-sub000/internal/domain"
	"github.com/TPMYandTPTH/xRAF-Dashboard-sub000/internal/logger"
	"github.com/TPMYandTPTH/xRAF-Dashboard-sub000/internal/notifier"
)

type otpService struct {
	notifier   notifier.Notifier
	codeLength int
	ttl        time.Duration
	testEmail  string
	testCode   string
	now        func() time.Time

	mu       sync.Mutex
	sessions map[string]*domain.OTPSession
}

// NewOTPService builds the OTP state machine. testEmail/testCode configure
// the demo bypass: that one address deterministically receives the fixed
// code. now is injectable for tests; pass time.Now in production wiring.
func NewOTPService(n notifier.Notifier, codeLength int, ttl time.Duration, testEmail, testCode string, now func() time.Time) OTPService {
	if now == nil {
		now = time.Now
	}
	return &otpService{
		notifier:   n,
		codeLength: codeLength,
		ttl:        ttl,
		testEmail:  testEmail,
		testCode:   testCode,
		now:        now,
		sessions:   make(map[string]*domain.OTPSession),
	}
}

func (s *otpService) RequestCode(ctx context.Context, email string) (bool, error) {
	if err := ValidateEmail(email); err != nil {
		return false, err
	}

	code, err := s.generateCode(email)
	if err != nil {
		return false, err
	}

	issued := s.now()
	session := &domain.OTPSession{
		ID:        uuid.NewString(),
		Email:     email,
		Code:      code,
		State:     domain.OTPStatePending,
		IssuedAt:  issued,
		ExpiresAt: issued.Add(s.ttl),
	}

	// Any previous session for this email is superseded, whatever its
	// state: Idle/Expired/Verified all transition to a fresh Pending.
	s.mu.Lock()
	s.sessions[email] = session
	s.mu.Unlock()

	// Delivery failure does not invalidate the code. The session stays
	// verifiable so a code obtained through another channel still works; the
	// caller is told delivery failed.
	if err := s.notifier.SendOTP(ctx, email, code); err != nil {
		logger.Warn("OTP delivery failed", "email", email, "session_id", session.ID, "error", err)
		s.mu.Lock()
		session.DeliveryFailed = true
		s.mu.Unlock()
		return false, nil
	}

	logger.Info("OTP issued", "email", email, "session_id", session.ID, "expires_at", session.ExpiresAt)
	return true, nil
}

func (s *otpService) VerifyCode(ctx context.Context, email, code string) domain.VerifyResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[email]
	if !ok || session.State != domain.OTPStatePending {
		return domain.VerifyResult{Success: false, Reason: domain.VerifyReasonNoActiveRequest}
	}

	if s.now().After(session.ExpiresAt) {
		session.State = domain.OTPStateExpired
		return domain.VerifyResult{Success: false, Reason: domain.VerifyReasonExpired}
	}

	if code != session.Code {
		return domain.VerifyResult{Success: false, Reason: domain.VerifyReasonMismatch}
	}

	// Single use: the code is consumed on success, so a later attempt with
	// the same code lands in NoActiveRequest.
	session.State = domain.OTPStateVerified
	session.Code = ""
	logger.Info("OTP verified", "email", email, "session_id", session.ID)
	return domain.VerifyResult{Success: true, Reason: domain.VerifyReasonOK}
}

func (s *otpService) SweepExpired() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for email, session := range s.sessions {
		if now.After(session.ExpiresAt) {
			delete(s.sessions, email)
			removed++
		}
	}
	return removed
}

func (s *otpService) generateCode(email string) (string, error) {
	if s.testEmail != "" && email == s.testEmail {
		return s.testCode, nil
	}

	digits := make([]byte, s.codeLength)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate OTP code: %w", err)
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}
