package domain

import "github.com/google/uuid"

// RunID uniquely identifies a single runner invocation.
// It wraps uuid.UUID to provide type safety at the domain layer.
type RunID uuid.UUID

// NewRunID returns a fresh random RunID.
func NewRunID() RunID { return RunID(uuid.New()) }

// String returns the canonical textual form of the ID.
func (id RunID) String() string { return uuid.UUID(id).String() }

// CaseStatus represents the outcome of a single sample case.
type CaseStatus string

const (
	// CaseStatusPassed indicates the case output matched its expectation.
	CaseStatusPassed CaseStatus = "PASSED"
	// CaseStatusFailed indicates the case output mismatched or the drill
	// returned an error; see Err for details.
	CaseStatusFailed CaseStatus = "FAILED"
)

// CaseResult records the outcome of one sample case of a drill.
type CaseResult struct {
	// Drill is the name of the drill the case belongs to.
	Drill string `json:"drill"`
	// Case is the display form of the invocation, e.g. "tableRow(5, 4)".
	Case string `json:"case"`

	// Got is the formatted output the drill produced; empty when the drill
	// returned an error instead.
	Got string `json:"got,omitempty"`
	// Want is the expected output literal; empty when the case is checked by
	// a property instead of a literal.
	Want string `json:"want,omitempty"`

	// Status is the outcome of the case.
	Status CaseStatus `json:"status"`
	// Err holds the error message when the drill failed, if any.
	Err string `json:"error,omitempty"`
}

// RunReport aggregates the results of one runner invocation.
type RunReport struct {
	// ID is the unique identifier of the run.
	ID RunID `json:"id"`

	// Results lists every executed case in execution order.
	Results []CaseResult `json:"results"`

	// Passed is the number of cases with status PASSED.
	Passed int `json:"passed"`
	// Failed is the number of cases with status FAILED.
	Failed int `json:"failed"`
}
