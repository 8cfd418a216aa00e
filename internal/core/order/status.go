// Package order contains the pure business logic for work order operations.
// This is part of the Functional Core - no I/O, only pure functions.
package order

// Status is the primary lifecycle axis of a work order. Statuses are
// ordered: a work order advances rank by rank and saturates at invoiced.
type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusComplete   Status = "complete"
	StatusInvoiced   Status = "invoiced"
)

// statusRanks defines the lifecycle ordering. Invoiced is terminal.
var statusRanks = map[Status]int{
	StatusOpen:       0,
	StatusInProgress: 1,
	StatusComplete:   2,
	StatusInvoiced:   3,
}

// TerminalRank is the rank of the terminal status.
const TerminalRank = 3

// Rank returns the lifecycle rank of s, or -1 for an unknown status.
func (s Status) Rank() int {
	rank, ok := statusRanks[s]
	if !ok {
		return -1
	}
	return rank
}

// Valid reports whether s is a known status label.
func (s Status) Valid() bool {
	_, ok := statusRanks[s]
	return ok
}

// Advance returns the status one rank above s, saturating at the terminal
// rank. Advancing an unknown status returns it unchanged.
func Advance(s Status) Status {
	switch s {
	case StatusOpen:
		return StatusInProgress
	case StatusInProgress:
		return StatusComplete
	case StatusComplete:
		return StatusInvoiced
	default:
		return s
	}
}

// InitialStatus returns the status assigned to newly created work orders.
func InitialStatus() Status {
	return StatusOpen
}

// Stage is the secondary, unordered descriptive axis of a work order.
// Stages carry no lifecycle meaning; any stage may follow any other.
type Stage string

const (
	StageIntake        Stage = "intake"
	StageDiagnostics   Stage = "diagnostics"
	StageRepair        Stage = "repair"
	StageAwaitingParts Stage = "awaiting_parts"
	StageQualityCheck  Stage = "quality_check"
)

// Valid reports whether s is a known stage label.
func (s Stage) Valid() bool {
	switch s {
	case StageIntake, StageDiagnostics, StageRepair, StageAwaitingParts, StageQualityCheck:
		return true
	}
	return false
}

// InitialStage returns the stage assigned to newly created work orders.
func InitialStage() Stage {
	return StageIntake
}

// Priority of a work order.
type Priority string

const (
	PriorityNormal   Priority = "normal"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Valid reports whether p is a known priority label.
func (p Priority) Valid() bool {
	switch p {
	case PriorityNormal, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}
