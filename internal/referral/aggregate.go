package referral

import "github.com/TPMYandTPTH/xRAF-Dashboard-sub000/internal/domain"

// EarningsConfig carries the payment business constants. Amounts are in the
// business's currency unit.
type EarningsConfig struct {
	AssessmentAmount       int
	ProbationAmount        int
	ProbationThresholdDays int
}

// assessmentOrLater marks the groups eligible for the assessment-passed
// payment tier: everything at or past the assessment stage.
var assessmentOrLater = map[domain.StatusGroup]bool{
	domain.StatusGroupAssessmentStage: true,
	domain.StatusGroupHiredProbation:  true,
	domain.StatusGroupHiredConfirmed:  true,
}

// hiredTier marks the groups eligible for the probation-completed payment
// tier.
var hiredTier = map[domain.StatusGroup]bool{
	domain.StatusGroupHiredProbation: true,
	domain.StatusGroupHiredConfirmed: true,
}

// CountsByGroup counts referrals per status group over the given display
// order. The result is total over the order: every group listed gets an
// entry, defaulting to zero, so the chart always renders all slices.
func CountsByGroup(records []domain.EnrichedReferral, order []domain.StatusGroup) []domain.GroupCount {
	tally := make(map[domain.StatusGroup]int, len(order))
	for _, r := range records {
		tally[r.StatusGroup]++
	}

	counts := make([]domain.GroupCount, 0, len(order))
	for _, g := range order {
		counts = append(counts, domain.GroupCount{
			Group: g,
			Stage: stageOf(g),
			Count: tally[g],
		})
	}
	return counts
}

// ComputeEarnings derives the earnings table from a batch. Previous
// candidates never qualify for either tier; the probation tier additionally
// requires a hired-tier group and tenure at or past the threshold. Pure and
// idempotent.
func ComputeEarnings(records []domain.EnrichedReferral, cfg EarningsConfig) domain.EarningsSummary {
	var summary domain.EarningsSummary
	for _, r := range records {
		if r.IsPreviousCandidate {
			continue
		}
		if assessmentOrLater[r.StatusGroup] {
			summary.AssessmentPassedCount++
		}
		if hiredTier[r.StatusGroup] && r.DaysInStage >= cfg.ProbationThresholdDays {
			summary.ProbationCompletedCount++
		}
	}

	summary.AssessmentEarningsTotal = summary.AssessmentPassedCount * cfg.AssessmentAmount
	summary.ProbationEarningsTotal = summary.ProbationCompletedCount * cfg.ProbationAmount
	summary.GrandTotal = summary.AssessmentEarningsTotal + summary.ProbationEarningsTotal
	return summary
}

// SelectReminderCandidates returns the referrals worth nudging: still at
// application-received, reachable by phone, and part of the referral
// program. Ordering is stable on input order; no secondary sort key.
func SelectReminderCandidates(records []domain.EnrichedReferral) []domain.EnrichedReferral {
	var out []domain.EnrichedReferral
	for _, r := range records {
		if r.StatusGroup != domain.StatusGroupApplicationReceived {
			continue
		}
		if r.Phone == "" || r.IsPreviousCandidate {
			continue
		}
		out = append(out, r)
	}
	return out
}
