// Package referral holds the pure referral-status logic: classification of
// raw HR status strings, per-record enrichment, and batch aggregation for the
// dashboard. Nothing in this package performs I/O.
package referral

import (
	"fmt"
	"strings"

	"github.com/TPMYandTPTH/xRAF-Dashboard-sub000/internal/domain"
)

// Classification is the full result of classifying one raw status string.
type Classification struct {
	Group domain.StatusGroup
	Type  domain.StatusType
	Stage domain.Stage
}

// statusRule matches when any of its keywords occurs as a substring of the
// lower-cased raw status.
type statusRule struct {
	keywords []string
	group    domain.StatusGroup
}

// statusRules is evaluated in order, first match wins. Order matters because
// patterns overlap: "Rejected after interview" must land in NOT_SELECTED,
// not ASSESSMENT_STAGE.
var statusRules = []statusRule{
	{[]string{"rejected", "eliminated", "withdrew", "not selected", "legacy"}, domain.StatusGroupNotSelected},
	{[]string{"hired", "graduate"}, domain.StatusGroupHiredProbation},
	{[]string{"interview", "final review", "ready to offer", "job offer", "onboarding", "cleared to start"}, domain.StatusGroupAssessmentStage},
	{[]string{"assessment", "shl"}, domain.StatusGroupAssessmentStage},
	{[]string{"previously applied", "ex-tp"}, domain.StatusGroupPreviouslyApplied},
}

// groupTypes and groupStages are total over the six groups; a missing entry
// is a programming error, and typeOf/stageOf panic rather than fall back.
var groupTypes = map[domain.StatusGroup]domain.StatusType{
	domain.StatusGroupApplicationReceived: domain.StatusTypeReceived,
	domain.StatusGroupAssessmentStage:     domain.StatusTypeAssessment,
	domain.StatusGroupHiredProbation:      domain.StatusTypeProbation,
	domain.StatusGroupHiredConfirmed:      domain.StatusTypePassed,
	domain.StatusGroupPreviouslyApplied:   domain.StatusTypePreviouslyApplied,
	domain.StatusGroupNotSelected:         domain.StatusTypeFailed,
}

var groupStages = map[domain.StatusGroup]domain.Stage{
	domain.StatusGroupApplicationReceived: domain.StageApplicationReceived,
	domain.StatusGroupAssessmentStage:     domain.StageAssessment,
	domain.StatusGroupHiredProbation:      domain.StageHiredProbation,
	domain.StatusGroupHiredConfirmed:      domain.StageHiredConfirmed,
	domain.StatusGroupPreviouslyApplied:   domain.StagePreviouslyApplied,
	domain.StatusGroupNotSelected:         domain.StageNotSelected,
}

// Classify maps a raw status string to its canonical group, display type and
// stage. Matching is case-insensitive substring matching over an ordered rule
// table; empty and unmatched statuses both classify as APPLICATION_RECEIVED.
//
// assessmentResult is accepted for forward compatibility (a future score
// threshold could refine the assessment bucket) but does not alter the
// outcome under the current contract. It is a deliberate no-op input, not an
// oversight.
func Classify(rawStatus, assessmentResult string) Classification {
	_ = assessmentResult

	group := domain.StatusGroupApplicationReceived
	if s := strings.ToLower(strings.TrimSpace(rawStatus)); s != "" {
		for _, rule := range statusRules {
			if containsAny(s, rule.keywords) {
				group = rule.group
				break
			}
		}
	}

	return Classification{
		Group: group,
		Type:  typeOf(group),
		Stage: stageOf(group),
	}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func typeOf(group domain.StatusGroup) domain.StatusType {
	t, ok := groupTypes[group]
	if !ok {
		panic(fmt.Sprintf("no status type mapping for group %q", group))
	}
	return t
}

func stageOf(group domain.StatusGroup) domain.Stage {
	st, ok := groupStages[group]
	if !ok {
		panic(fmt.Sprintf("no stage mapping for group %q", group))
	}
	return st
}
