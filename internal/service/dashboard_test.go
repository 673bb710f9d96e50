package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/TPMYandTPTH/xRAF-Dashboard-sub000/internal/domain"
	"github.com/TPMYandTPTH/xRAF-Dashboard-sub000/internal/referral"
)

var dashNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestDashboardService(fetcher *MockFetcher) DashboardService {
	return NewDashboardService(
		fetcher,
		referral.NewEnricher("xraf"),
		referral.EarningsConfig{AssessmentAmount: 50, ProbationAmount: 750, ProbationThresholdDays: 90},
		"6",
		"Please finish your assessment",
		func() time.Time { return dashNow },
	)
}

func TestDashboardService_GetDashboard(t *testing.T) {
	fetcher := new(MockFetcher)
	svc := newTestDashboardService(fetcher)
	ctx := context.Background()

	records := []domain.RawReferralRecord{
		{ID: "1", Status: "Application Received", Phone: "0123456789", Source: "xRAF", UpdatedDate: "01/06/2025"},
		{ID: "2", Status: "Assessment Completed", Source: "xRAF", UpdatedDate: "01/05/2025"},
		{ID: "3", Status: "Hired", Source: "xRAF", UpdatedDate: "01/02/2025"},
		{ID: "4", Status: "Rejected", Source: "Job Board", UpdatedDate: "01/03/2025"},
	}
	fetcher.On("FetchReferrals", ctx, "0123456789", "me@example.com").Return(records, nil)

	view, err := svc.GetDashboard(ctx, "012-345 6789", "me@example.com")
	assert.NoError(t, err)
	assert.Empty(t, view.Notice)
	assert.Len(t, view.Referrals, 4)

	// Counts are total over the six-group display order and sum to the
	// record count.
	assert.Len(t, view.Counts, len(domain.DisplayOrder))
	total := 0
	for _, c := range view.Counts {
		total += c.Count
	}
	assert.Equal(t, 4, total)

	// Assessment + hired referrals earn the assessment tier; the hire from
	// February is past 90 days and earns the probation tier too.
	assert.Equal(t, 2, view.Earnings.AssessmentPassedCount)
	assert.Equal(t, 1, view.Earnings.ProbationCompletedCount)
	assert.Equal(t, 2*50+750, view.Earnings.GrandTotal)

	// Only the reachable application-received referral gets a reminder.
	assert.Len(t, view.Reminders, 1)
	assert.Equal(t, "1", view.Reminders[0].Referral.ID)
	assert.Contains(t, view.Reminders[0].WhatsAppLink, "https://wa.me/60123456789")
}

func TestDashboardService_FetchFailureDegradesToEmpty(t *testing.T) {
	fetcher := new(MockFetcher)
	svc := newTestDashboardService(fetcher)
	ctx := context.Background()

	fetcher.On("FetchReferrals", ctx, "0123456789", "me@example.com").Return(nil, assert.AnError)

	view, err := svc.GetDashboard(ctx, "0123456789", "me@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, view.Notice)
	assert.Empty(t, view.Referrals)
	assert.Len(t, view.Counts, len(domain.DisplayOrder))
	assert.Equal(t, domain.EarningsSummary{}, view.Earnings)
	assert.Empty(t, view.Reminders)
}

func TestDashboardService_ValidationBeforeFetch(t *testing.T) {
	fetcher := new(MockFetcher)
	svc := newTestDashboardService(fetcher)
	ctx := context.Background()

	t.Run("Bad phone", func(t *testing.T) {
		_, err := svc.GetDashboard(ctx, "abc", "me@example.com")
		assert.ErrorIs(t, err, ErrInvalidPhone)
	})

	t.Run("Bad email", func(t *testing.T) {
		_, err := svc.GetDashboard(ctx, "0123456789", "nope")
		assert.ErrorIs(t, err, ErrInvalidEmail)
	})

	fetcher.AssertNotCalled(t, "FetchReferrals", mock.Anything, mock.Anything, mock.Anything)
}
