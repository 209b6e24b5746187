package chp

import (
	"fmt"

	"github.com/alan-christopher/chp/chp/tableau"
)

// An Op is a single circuit instruction. The set of Ops is closed: H, S, X,
// CNOT, M, Measure, Controlled and Unsupported.
type Op interface {
	fmt.Stringer
	isOp()
}

type (
	// H is a Hadamard gate.
	H struct{ Target int }
	// S is a phase gate.
	S struct{ Target int }
	// X is a Pauli X gate.
	X struct{ Target int }
	// CNOT is a controlled-NOT gate.
	CNOT struct{ Control, Target int }
	// M is a Z-basis measurement of one qubit.
	M struct{ Target int }
	// Measure is a Pauli measurement with one basis per qubit.
	Measure struct {
		Bases  []Pauli
		Qubits []int
	}
	// Controlled is Op conditioned on every qubit in Controls.
	Controlled struct {
		Controls []int
		Op       Op
	}
	// Unsupported names an operation outside the Clifford set, e.g. T or a
	// rotation. Applying it always fails.
	Unsupported struct {
		Name   string
		Qubits []int
	}
)

func (H) isOp()           {}
func (S) isOp()           {}
func (X) isOp()           {}
func (CNOT) isOp()        {}
func (M) isOp()           {}
func (Measure) isOp()     {}
func (Controlled) isOp()  {}
func (Unsupported) isOp() {}

func (o H) String() string    { return fmt.Sprintf("h %d", o.Target) }
func (o S) String() string    { return fmt.Sprintf("s %d", o.Target) }
func (o X) String() string    { return fmt.Sprintf("x %d", o.Target) }
func (o CNOT) String() string { return fmt.Sprintf("c %d %d", o.Control, o.Target) }
func (o M) String() string    { return fmt.Sprintf("m %d", o.Target) }

func (o Measure) String() string {
	return fmt.Sprintf("measure %v %v", o.Bases, o.Qubits)
}

func (o Controlled) String() string {
	return fmt.Sprintf("controlled%v %v", o.Controls, o.Op)
}

func (o Unsupported) String() string {
	return fmt.Sprintf("%s %v", o.Name, o.Qubits)
}

// Apply performs op. For measurements it returns the outcome; for gates the
// returned result is nil.
func (p *Processor) Apply(op Op) (*tableau.Result, error) {
	measured := func(r tableau.Result, err error) (*tableau.Result, error) {
		if err != nil {
			return nil, err
		}
		return &r, nil
	}
	switch op := op.(type) {
	case H:
		return nil, p.H(op.Target)
	case S:
		return nil, p.S(op.Target)
	case X:
		return nil, p.X(op.Target)
	case CNOT:
		return nil, p.ControlledX([]int{op.Control}, op.Target)
	case M:
		return measured(p.M(op.Target))
	case Measure:
		return measured(p.Measure(op.Bases, op.Qubits))
	case Controlled:
		switch base := op.Op.(type) {
		case H:
			return nil, p.ControlledH(op.Controls, base.Target)
		case X:
			return nil, p.ControlledX(op.Controls, base.Target)
		default:
			return nil, p.reject(tableau.Unsupported(op.String(), "only controlled H and X may be requested"))
		}
	case Unsupported:
		return nil, p.reject(tableau.Unsupported(op.Name, "not a Clifford operation"))
	default:
		return nil, p.reject(tableau.Unsupported(fmt.Sprint(op), "not a Clifford operation"))
	}
}
