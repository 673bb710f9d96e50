package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/TPMYandTPTH/xRAF-Dashboard-sub000/internal/domain"
)

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendOTP(ctx context.Context, email, code string) error {
	args := m.Called(ctx, email, code)
	return args.Error(0)
}

type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) FetchReferrals(ctx context.Context, phone, email string) ([]domain.RawReferralRecord, error) {
	args := m.Called(ctx, phone, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RawReferralRecord), args.Error(1)
}
