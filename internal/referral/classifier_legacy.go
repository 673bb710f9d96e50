package referral

import "strings"

// LegacyGroup is a bucket of the legacy eight-group scheme. Unlike the
// canonical scheme the legacy classifier is not total: a status it does not
// recognise comes back unchanged as a pseudo-group.
type LegacyGroup string

const (
	LegacyGroupApplicationReceived LegacyGroup = "Application Received"
	LegacyGroupAssessment          LegacyGroup = "Assessment"
	LegacyGroupInterview           LegacyGroup = "Interview"
	LegacyGroupFinalReview         LegacyGroup = "Final Review"
	LegacyGroupHiredProbation      LegacyGroup = "Hired (Probation)"
	LegacyGroupHiredConfirmed      LegacyGroup = "Hired (Confirmed)"
	LegacyGroupPreviouslyApplied   LegacyGroup = "Previously Applied"
	LegacyGroupNotSelected         LegacyGroup = "Not Selected"
)

// legacyMembership enumerates the exact status strings the legacy scheme
// recognised per group. Lookup is case-insensitive on the trimmed string.
// The NOT_SELECTED list is the largest by far; the upstream ATS emits one
// variant per elimination point in the pipeline.
var legacyMembership = map[LegacyGroup][]string{
	LegacyGroupApplicationReceived: {
		"Application Received",
		"New Application",
		"Application Under Review",
		"Screening",
		"Pre-Screening",
		"Contact Attempted",
		"Contacted",
	},
	LegacyGroupAssessment: {
		"Assessment Scheduled",
		"Assessment Sent",
		"Assessment In Progress",
		"Assessment Completed",
		"SHL Assessment Sent",
		"SHL Assessment Completed",
		"Language Assessment",
		"Typing Assessment",
	},
	LegacyGroupInterview: {
		"Interview Scheduled",
		"Interview Completed",
		"First Interview",
		"Second Interview",
		"Operations Interview",
		"Client Interview",
	},
	LegacyGroupFinalReview: {
		"Final Review",
		"Ready to Offer",
		"Job Offer Extended",
		"Job Offer Accepted",
		"Onboarding",
		"Cleared to Start",
		"Background Check",
	},
	LegacyGroupHiredProbation: {
		"Hired",
		"Hired - Probation",
		"Started",
		"In Training",
	},
	LegacyGroupHiredConfirmed: {
		"Hired - Confirmed",
		"Graduate",
		"Graduated Training",
		"Confirmed Employee",
	},
	LegacyGroupPreviouslyApplied: {
		"Previously Applied",
		"Ex-TP",
		"Rehire Review",
	},
	LegacyGroupNotSelected: {
		"Not Selected",
		"Rejected",
		"Rejected - Assessment",
		"Rejected - Interview",
		"Rejected - Final Review",
		"Rejected - Background Check",
		"Eliminated - No Show",
		"Eliminated - Unresponsive",
		"Eliminated - Assessment Failed",
		"Eliminated - Language",
		"Eliminated - Typing",
		"Eliminated - Duplicate",
		"Eliminated - Ineligible",
		"Eliminated - Location",
		"Eliminated - Work Authorization",
		"Withdrew - Before Assessment",
		"Withdrew - After Assessment",
		"Withdrew - Before Interview",
		"Withdrew - After Offer",
		"Withdrew - Other Offer",
		"Withdrew - Personal",
		"Declined Offer",
		"Offer Rescinded",
		"No Show - Day One",
		"Legacy - Closed",
		"Legacy - Migrated",
	},
}

// legacyPrefixes are checked, in order, when exact lookup misses.
var legacyPrefixes = []struct {
	prefix string
	group  LegacyGroup
}{
	{"eliminated", LegacyGroupNotSelected},
	{"withdrew", LegacyGroupNotSelected},
	{"legacy", LegacyGroupNotSelected},
}

var legacyIndex = buildLegacyIndex()

func buildLegacyIndex() map[string]LegacyGroup {
	idx := make(map[string]LegacyGroup)
	for group, statuses := range legacyMembership {
		for _, s := range statuses {
			idx[strings.ToLower(s)] = group
		}
	}
	return idx
}

// ClassifyLegacy applies the legacy eight-group scheme: exact membership
// lookup first, then prefix checks, then the raw string itself as a
// pseudo-group. Retained only as a documented alternative to Classify; the
// two schemes disagree on granularity (the legacy scheme splits Interview,
// Final Review and confirmed hires into their own buckets) and must never be
// mixed within one view.
func ClassifyLegacy(rawStatus string) LegacyGroup {
	trimmed := strings.TrimSpace(rawStatus)
	if trimmed == "" {
		return LegacyGroupApplicationReceived
	}

	lower := strings.ToLower(trimmed)
	if group, ok := legacyIndex[lower]; ok {
		return group
	}
	for _, p := range legacyPrefixes {
		if strings.HasPrefix(lower, p.prefix) {
			return p.group
		}
	}
	return LegacyGroup(trimmed)
}
