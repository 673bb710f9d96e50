package referral

import (
	"strings"
	"time"

	"github.com/TPMYandTPTH/xRAF-Dashboard-sub000/internal/domain"
)

// updateDateLayouts are tried in order when parsing the upstream update-date
// field. The ATS exports day-first dates; ISO and RFC3339 cover newer export
// formats.
var updateDateLayouts = []string{
	"02/01/2006",
	"2006-01-02",
	time.RFC3339,
}

// Enricher derives EnrichedReferral values from raw records. It is a pure
// transformation; "now" is always passed in so enrichment stays
// deterministic and testable.
type Enricher struct {
	// SourceMarker identifies the tracked referral program in the record's
	// source channel. A record whose source does not contain the marker is
	// treated as a previous/organic candidate.
	SourceMarker string
}

// NewEnricher returns an Enricher matching sources against marker,
// case-insensitively.
func NewEnricher(marker string) *Enricher {
	return &Enricher{SourceMarker: strings.ToLower(marker)}
}

// Enrich classifies one raw record and computes its derived fields. It never
// fails: missing or unparseable dates substitute now (daysInStage 0), and
// future-dated updates clamp to 0 rather than going negative.
func (e *Enricher) Enrich(raw domain.RawReferralRecord, now time.Time) domain.EnrichedReferral {
	c := Classify(raw.Status, raw.AssessmentResult)

	updated := parseUpdateDate(raw.UpdatedDate, now)
	days := int(now.Sub(updated).Hours() / 24)
	if days < 0 {
		days = 0
	}

	previous := c.Group == domain.StatusGroupPreviouslyApplied || !e.isReferralSource(raw.Source)
	needsAction := c.Group == domain.StatusGroupApplicationReceived && strings.TrimSpace(raw.Phone) != ""

	return domain.EnrichedReferral{
		ID:                  raw.ID,
		Name:                raw.Name,
		Email:               raw.Email,
		Phone:               raw.Phone,
		RawStatus:           raw.Status,
		Source:              raw.Source,
		Location:            raw.Location,
		Nationality:         raw.Nationality,
		UpdatedDate:         updated,
		DaysInStage:         days,
		StatusGroup:         c.Group,
		StatusType:          c.Type,
		Stage:               c.Stage,
		IsPreviousCandidate: previous,
		NeedsAction:         needsAction,
	}
}

// EnrichAll enriches a batch, preserving input order.
func (e *Enricher) EnrichAll(raws []domain.RawReferralRecord, now time.Time) []domain.EnrichedReferral {
	enriched := make([]domain.EnrichedReferral, 0, len(raws))
	for _, raw := range raws {
		enriched = append(enriched, e.Enrich(raw, now))
	}
	return enriched
}

func (e *Enricher) isReferralSource(source string) bool {
	if e.SourceMarker == "" {
		return true
	}
	return strings.Contains(strings.ToLower(source), e.SourceMarker)
}

func parseUpdateDate(raw string, now time.Time) time.Time {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return now
	}
	for _, layout := range updateDateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t
		}
	}
	return now
}
