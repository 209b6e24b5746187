package tableau

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupported is matched by every error rejecting a well-formed request
	// outside the supported Clifford operation set.
	ErrUnsupported = errors.New("unsupported operation")

	// ErrInvalidIndex is matched by every error rejecting a qubit index
	// outside [0, n).
	ErrInvalidIndex = errors.New("invalid qubit index")
)

// An UnsupportedOperationError rejects an operation the simulator cannot
// perform exactly.
type UnsupportedOperationError struct {
	Op     string
	Reason string
}

// Unsupported returns an *UnsupportedOperationError for op.
func Unsupported(op, reason string) error {
	return &UnsupportedOperationError{Op: op, Reason: reason}
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

func (e *UnsupportedOperationError) Unwrap() error { return ErrUnsupported }

// An IndexError rejects a qubit index outside [0, Qubits).
type IndexError struct {
	Qubit  int
	Qubits int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("qubit %d out of range [0, %d)", e.Qubit, e.Qubits)
}

func (e *IndexError) Unwrap() error { return ErrInvalidIndex }

// CheckQubit returns an *IndexError if q is not a qubit of t.
func (t *Tableau) CheckQubit(q int) error {
	if q < 0 || q >= t.n {
		return &IndexError{Qubit: q, Qubits: t.n}
	}
	return nil
}
