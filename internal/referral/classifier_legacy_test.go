package referral

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyLegacy(t *testing.T) {
	tests := []struct {
		name      string
		rawStatus string
		group     LegacyGroup
	}{
		{"Empty", "", LegacyGroupApplicationReceived},
		{"Exact match", "Interview Scheduled", LegacyGroupInterview},
		{"Exact match other case", "interview scheduled", LegacyGroupInterview},
		{"Final review split out", "Final Review", LegacyGroupFinalReview},
		{"Confirmed hire split out", "Hired - Confirmed", LegacyGroupHiredConfirmed},
		{"Probation hire", "Hired", LegacyGroupHiredProbation},
		{"Not selected variant", "Withdrew - Other Offer", LegacyGroupNotSelected},
		{"Eliminated prefix fallback", "Eliminated - Some Future Reason", LegacyGroupNotSelected},
		{"Withdrew prefix fallback", "Withdrew without notice", LegacyGroupNotSelected},
		{"Legacy prefix fallback", "Legacy import batch 7", LegacyGroupNotSelected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.group, ClassifyLegacy(tt.rawStatus))
		})
	}
}

func TestClassifyLegacy_UnknownStatusPassesThrough(t *testing.T) {
	// The legacy scheme is not total: an unrecognised status comes back
	// verbatim as a pseudo-group.
	raw := "Quantum Interview Loop"
	assert.Equal(t, LegacyGroup(raw), ClassifyLegacy(raw))
}

func TestClassifyLegacy_SchemesDisagreeOnGranularity(t *testing.T) {
	// The documented divergence between the schemes: the canonical scheme
	// folds interviews into the assessment stage and confirmed hires into
	// the single hired bucket; the legacy scheme keeps them separate.
	assert.Equal(t, LegacyGroupInterview, ClassifyLegacy("Interview Scheduled"))
	assert.NotEqual(t, string(Classify("Interview Scheduled", "").Group), string(LegacyGroupInterview))

	assert.Equal(t, LegacyGroupHiredConfirmed, ClassifyLegacy("Hired - Confirmed"))
}
