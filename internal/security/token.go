package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrExpiredToken   = errors.New("token has expired")
	ErrWrongTokenType = errors.New("wrong token type for this endpoint")
)

type TokenType string

const (
	// TokenTypeOTPPending binds an OTP verify call to the request that
	// issued the code.
	TokenTypeOTPPending TokenType = "otp_pending"
	// TokenTypeSession grants access to the dashboard endpoints after a
	// successful OTP verification.
	TokenTypeSession TokenType = "session"
)

// SessionClaims defines the claims carried by both token types.
type SessionClaims struct {
	Email string    `json:"email"`
	Type  TokenType `json:"type"`
	jwt.RegisteredClaims
}

type TokenManager interface {
	GeneratePendingToken(email string) (string, error)
	GenerateSessionToken(email string) (string, error)
	ValidateToken(tokenString string, expected TokenType) (*SessionClaims, error)
}

type tokenManager struct {
	secret        []byte
	pendingExpiry time.Duration
	sessionExpiry time.Duration
}

func NewTokenManager(secret string, pendingExpiry, sessionExpiry time.Duration) TokenManager {
	return &tokenManager{
		secret:        []byte(secret),
		pendingExpiry: pendingExpiry,
		sessionExpiry: sessionExpiry,
	}
}

func (m *tokenManager) GeneratePendingToken(email string) (string, error) {
	return m.generate(email, TokenTypeOTPPending, m.pendingExpiry, "otp-verification")
}

func (m *tokenManager) GenerateSessionToken(email string) (string, error) {
	return m.generate(email, TokenTypeSession, m.sessionExpiry, "dashboard-access")
}

func (m *tokenManager) generate(email string, tokenType TokenType, expiry time.Duration, audience string) (string, error) {
	claims := SessionClaims{
		Email: email,
		Type:  tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "xraf-dashboard",
			Audience:  jwt.ClaimStrings{audience},
			ID:        uuid.NewString(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *tokenManager) ValidateToken(tokenString string, expected TokenType) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Type != expected {
		return nil, ErrWrongTokenType
	}
	return claims, nil
}
