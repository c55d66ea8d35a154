package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrProtocol marks an illegal action or an illegal read by an agent.
	ErrProtocol = errors.New("protocol violation")
	// ErrInvariant marks an internal-consistency failure in belief tracking.
	ErrInvariant = errors.New("invariant violation")
)

// ProtocolError describes an action the engine refused to apply.
type ProtocolError struct {
	Seat   int
	Action Action // nil for illegal reads
	Reason string
}

func (e *ProtocolError) Error() string {
	if e.Action == nil {
		return fmt.Sprintf("seat %d: %s", e.Seat, e.Reason)
	}
	return fmt.Sprintf("seat %d: %s: %s", e.Seat, e.Action, e.Reason)
}

func (e *ProtocolError) Unwrap() error { return ErrProtocol }

// InvariantError describes a contradiction inside an agent's knowledge.
type InvariantError struct {
	Reason string
}

func (e *InvariantError) Error() string { return "invariant: " + e.Reason }

func (e *InvariantError) Unwrap() error { return ErrInvariant }

// Invariantf panics with an *InvariantError. Table.Run converts the panic
// into an error for the game in which it happened.
func Invariantf(format string, args ...any) {
	panic(&InvariantError{Reason: fmt.Sprintf(format, args...)})
}

func protocolf(seat uint8, a Action, format string, args ...any) *ProtocolError {
	return &ProtocolError{Seat: int(seat), Action: a, Reason: fmt.Sprintf(format, args...)}
}
