package service

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/TPMYandTPTH/xRAF-Dashboard-sub000/internal/domain"
	"github.com/TPMYandTPTH/xRAF-Dashboard-sub000/internal/logger"
	"github.com/TPMYandTPTH/xRAF-Dashboard-sub000/internal/referral"
)

const fetchFailedNotice = "Referral records are temporarily unavailable; showing an empty list."

type dashboardService struct {
	fetcher         ReferralFetcher
	enricher        *referral.Enricher
	earnings        referral.EarningsConfig
	whatsAppPrefix  string
	reminderMessage string
	now             func() time.Time

	// inflight coalesces concurrent identical submits into one upstream
	// call, so a double-clicked form never fetches twice.
	inflight singleflight.Group
}

// NewDashboardService wires the pure referral logic to the HR fetcher.
func NewDashboardService(fetcher ReferralFetcher, enricher *referral.Enricher, earnings referral.EarningsConfig, whatsAppPrefix, reminderMessage string, now func() time.Time) DashboardService {
	if now == nil {
		now = time.Now
	}
	return &dashboardService{
		fetcher:         fetcher,
		enricher:        enricher,
		earnings:        earnings,
		whatsAppPrefix:  whatsAppPrefix,
		reminderMessage: reminderMessage,
		now:             now,
	}
}

func (s *dashboardService) GetDashboard(ctx context.Context, phone, email string) (*domain.DashboardView, error) {
	normalized, err := NormalizePhone(phone)
	if err != nil {
		return nil, err
	}
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}

	key := normalized + "|" + email
	view, err, _ := s.inflight.Do(key, func() (interface{}, error) {
		return s.buildView(ctx, normalized, email), nil
	})
	if err != nil {
		return nil, err
	}
	return view.(*domain.DashboardView), nil
}

// buildView assembles the complete dashboard payload. A fetch failure is not
// fatal: the view degrades to an empty batch with a notice and the UI stays
// re-submittable.
func (s *dashboardService) buildView(ctx context.Context, phone, email string) *domain.DashboardView {
	var notice string
	raws, err := s.fetcher.FetchReferrals(ctx, phone, email)
	if err != nil {
		logger.Warn("referral fetch failed, serving empty batch", "email", email, "error", err)
		raws = nil
		notice = fetchFailedNotice
	}

	now := s.now()
	enriched := s.enricher.EnrichAll(raws, now)

	reminders := make([]domain.ReminderCandidate, 0)
	for _, r := range referral.SelectReminderCandidates(enriched) {
		reminders = append(reminders, domain.ReminderCandidate{
			Referral:     r,
			WhatsAppLink: referral.WhatsAppLink(r.Phone, s.whatsAppPrefix, s.reminderMessage),
		})
	}

	return &domain.DashboardView{
		Referrals: enriched,
		Counts:    referral.CountsByGroup(enriched, domain.DisplayOrder),
		Earnings:  referral.ComputeEarnings(enriched, s.earnings),
		Reminders: reminders,
		Notice:    notice,
	}
}
