package domain

// StatusGroup is the canonical bucket assigned to a raw status string from
// the upstream HR system. The set is closed: classification is a total
// function and unmatched strings fall back to StatusGroupApplicationReceived.
type StatusGroup string

const (
	StatusGroupApplicationReceived StatusGroup = "APPLICATION_RECEIVED"
	StatusGroupAssessmentStage     StatusGroup = "ASSESSMENT_STAGE"
	StatusGroupHiredProbation      StatusGroup = "HIRED_PROBATION"
	StatusGroupHiredConfirmed      StatusGroup = "HIRED_CONFIRMED"
	StatusGroupPreviouslyApplied   StatusGroup = "PREVIOUSLY_APPLIED"
	StatusGroupNotSelected         StatusGroup = "NOT_SELECTED"
)

// StatusType is the display/semantic tag derived 1:1 from StatusGroup. It is
// never stored independently of the group it was derived from.
type StatusType string

const (
	StatusTypeReceived          StatusType = "received"
	StatusTypeAssessment        StatusType = "assessment"
	StatusTypeProbation         StatusType = "probation"
	StatusTypePassed            StatusType = "passed"
	StatusTypePreviouslyApplied StatusType = "previously-applied"
	StatusTypeFailed            StatusType = "failed"
)

// Stage is the coarse display label. In the canonical scheme it matches the
// group's display string one-to-one; it stays a distinct type because the
// legacy scheme collapses several groups into fewer stages (both hired
// groups display as "Hired").
type Stage string

const (
	StageApplicationReceived Stage = "Application Received"
	StageAssessment          Stage = "Assessment Stage"
	StageHiredProbation      Stage = "Hired (Probation)"
	StageHiredConfirmed      Stage = "Hired (Confirmed)"
	StageHired               Stage = "Hired"
	StagePreviouslyApplied   Stage = "Previously Applied"
	StageNotSelected         Stage = "Not Selected"
)

// DisplayOrder is the fixed six-group order the dashboard chart renders in.
// Aggregation emits an entry for every group in this order, zero or not.
var DisplayOrder = []StatusGroup{
	StatusGroupApplicationReceived,
	StatusGroupAssessmentStage,
	StatusGroupHiredProbation,
	StatusGroupHiredConfirmed,
	StatusGroupPreviouslyApplied,
	StatusGroupNotSelected,
}
