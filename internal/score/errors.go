package score

import "fmt"

// MissingPitcherError — matchup scoring was invoked without a pitcher
// record. Matchup scores are meaningless without exactly one pitcher, so
// this is rejected before any rule evaluation.
type MissingPitcherError struct{}

// Error returns the text description of the error.
func (e *MissingPitcherError) Error() string {
	return "matchup scoring requires a pitcher record"
}

// NewMissingPitcherError creates a new MissingPitcherError.
func NewMissingPitcherError() *MissingPitcherError {
	return &MissingPitcherError{}
}

// InvalidRecordError — a record violates one of its invariants (rate stat
// out of range, negative count, unrecognized handedness or position code).
// Raised at the scoring boundary; no subject is ever partially scored.
type InvalidRecordError struct {
	// Subject is the name of the offending record.
	Subject string
	// Reason is the violated invariant.
	Reason error
}

// Error returns the text description of the error.
func (e *InvalidRecordError) Error() string {
	return fmt.Sprintf("invalid record %q: %v", e.Subject, e.Reason)
}

// Unwrap exposes the underlying invariant violation.
func (e *InvalidRecordError) Unwrap() error {
	return e.Reason
}

// NewInvalidRecordError creates a new InvalidRecordError for the named
// subject.
func NewInvalidRecordError(subject string, reason error) *InvalidRecordError {
	return &InvalidRecordError{Subject: subject, Reason: reason}
}

// EmptyPositionSetError — a defensive record declares zero eligible
// positions, so there is nothing to score it at.
type EmptyPositionSetError struct {
	// Player is the name of the offending record.
	Player string
}

// Error returns the text description of the error.
func (e *EmptyPositionSetError) Error() string {
	return fmt.Sprintf("player %q declares no eligible positions", e.Player)
}

// NewEmptyPositionSetError creates a new EmptyPositionSetError for the
// named player.
func NewEmptyPositionSetError(player string) *EmptyPositionSetError {
	return &EmptyPositionSetError{Player: player}
}
