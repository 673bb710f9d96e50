package referral

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TPMYandTPTH/xRAF-Dashboard-sub000/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		rawStatus string
		group     domain.StatusGroup
	}{
		{"Empty status", "", domain.StatusGroupApplicationReceived},
		{"Whitespace only", "   ", domain.StatusGroupApplicationReceived},
		{"Unmatched status", "Some Brand New Pipeline Step", domain.StatusGroupApplicationReceived},
		{"Rejected", "Rejected - Interview", domain.StatusGroupNotSelected},
		{"Eliminated", "Eliminated - No Show", domain.StatusGroupNotSelected},
		{"Withdrew", "Candidate Withdrew", domain.StatusGroupNotSelected},
		{"Not selected", "Not Selected", domain.StatusGroupNotSelected},
		{"Legacy", "Legacy - Closed", domain.StatusGroupNotSelected},
		{"Hired", "Hired", domain.StatusGroupHiredProbation},
		{"Hired confirmed string still one bucket", "Hired (Confirmed)", domain.StatusGroupHiredProbation},
		{"Graduate", "Graduate", domain.StatusGroupHiredProbation},
		{"Interview", "Interview Scheduled", domain.StatusGroupAssessmentStage},
		{"Final review", "Final Review", domain.StatusGroupAssessmentStage},
		{"Ready to offer", "Ready to Offer", domain.StatusGroupAssessmentStage},
		{"Job offer", "Job Offer Extended", domain.StatusGroupAssessmentStage},
		{"Onboarding", "Onboarding", domain.StatusGroupAssessmentStage},
		{"Cleared to start", "Cleared to Start", domain.StatusGroupAssessmentStage},
		{"Assessment", "Assessment Sent", domain.StatusGroupAssessmentStage},
		{"SHL", "SHL Completed", domain.StatusGroupAssessmentStage},
		{"Previously applied", "Previously Applied", domain.StatusGroupPreviouslyApplied},
		{"Ex-TP", "Ex-TP Candidate", domain.StatusGroupPreviouslyApplied},
		{"Mixed case", "rEJECTED", domain.StatusGroupNotSelected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Classify(tt.rawStatus, "")
			assert.Equal(t, tt.group, c.Group)
		})
	}
}

func TestClassify_RejectionPrecedence(t *testing.T) {
	// Terminal keywords win no matter where they sit in the string and no
	// matter which other rules would also match.
	tests := []string{
		"Rejected after interview",
		"Interview - Rejected",
		"Hired then Withdrew",
		"Assessment Eliminated",
		"not selected for job offer",
		"Legacy hired record",
	}

	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			c := Classify(raw, "")
			assert.Equal(t, domain.StatusGroupNotSelected, c.Group)
		})
	}
}

func TestClassify_HiredBeforeInterview(t *testing.T) {
	// "hired" outranks the interview keywords when both appear.
	c := Classify("Hired after final interview", "")
	assert.Equal(t, domain.StatusGroupHiredProbation, c.Group)
}

func TestClassify_TypeAndStage(t *testing.T) {
	tests := []struct {
		rawStatus string
		group     domain.StatusGroup
		typ       domain.StatusType
		stage     domain.Stage
	}{
		{"", domain.StatusGroupApplicationReceived, domain.StatusTypeReceived, domain.StageApplicationReceived},
		{"Assessment", domain.StatusGroupAssessmentStage, domain.StatusTypeAssessment, domain.StageAssessment},
		{"Hired (Confirmed)", domain.StatusGroupHiredProbation, domain.StatusTypeProbation, domain.StageHiredProbation},
		{"Previously Applied", domain.StatusGroupPreviouslyApplied, domain.StatusTypePreviouslyApplied, domain.StagePreviouslyApplied},
		{"Rejected", domain.StatusGroupNotSelected, domain.StatusTypeFailed, domain.StageNotSelected},
	}

	for _, tt := range tests {
		t.Run(tt.rawStatus, func(t *testing.T) {
			c := Classify(tt.rawStatus, "")
			assert.Equal(t, tt.group, c.Group)
			assert.Equal(t, tt.typ, c.Type)
			assert.Equal(t, tt.stage, c.Stage)
		})
	}
}

func TestClassify_AssessmentResultIsNoOp(t *testing.T) {
	withResult := Classify("Assessment Completed", "92")
	withoutResult := Classify("Assessment Completed", "")
	assert.Equal(t, withoutResult, withResult)
}

func TestClassify_MappingsAreTotal(t *testing.T) {
	for _, g := range domain.DisplayOrder {
		assert.NotPanics(t, func() {
			typeOf(g)
			stageOf(g)
		}, "group %s must have type and stage mappings", g)
	}
}
