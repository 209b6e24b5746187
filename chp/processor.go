package chp

import (
	"errors"
	"fmt"

	"github.com/alan-christopher/chp/chp/tableau"
	"go.uber.org/zap"
)

// A Pauli names a single-qubit measurement basis.
type Pauli int

const (
	PauliI Pauli = iota
	PauliX
	PauliY
	PauliZ
)

func (b Pauli) String() string {
	switch b {
	case PauliI:
		return "I"
	case PauliX:
		return "X"
	case PauliY:
		return "Y"
	case PauliZ:
		return "Z"
	}
	return fmt.Sprintf("Pauli(%d)", int(b))
}

// H applies a Hadamard gate to qubit q.
func (p *Processor) H(q int) error {
	return p.gate("H", p.t.Hadamard(q))
}

// ControlledH applies a Hadamard gate to qubit q conditioned on controls. Only
// the uncontrolled case is a Clifford operation.
func (p *Processor) ControlledH(controls []int, q int) error {
	if len(controls) == 0 {
		return p.H(q)
	}
	return p.reject(tableau.Unsupported("Controlled H", "controlled H is not a Clifford operation"))
}

// S applies a phase gate to qubit q.
func (p *Processor) S(q int) error {
	return p.gate("S", p.t.Phase(q))
}

// X applies a Pauli X gate to qubit q.
func (p *Processor) X(q int) error {
	return p.gate("X", p.t.PauliX(q))
}

// ControlledX applies a CNOT from the single control onto qubit q.
func (p *Processor) ControlledX(controls []int, q int) error {
	if len(controls) != 1 {
		return p.reject(tableau.Unsupported("Controlled X",
			fmt.Sprintf("only singly-controlled X is allowed, got %d controls", len(controls))))
	}
	return p.gate("CNOT", p.t.CNOT(controls[0], q))
}

// M measures qubit q in the Z basis.
func (p *Processor) M(q int) (tableau.Result, error) {
	r, err := p.t.Measure(q, p.rand)
	if errors.Is(err, tableau.ErrInvalidIndex) {
		return tableau.Result{}, p.reject(err)
	}
	if err != nil {
		p.log.Error("measurement failed", zap.Int("qubit", q), zap.Error(err))
		return tableau.Result{}, err
	}
	p.stats.Measurements++
	if r.Random {
		p.stats.RandomMeasurements++
	}
	p.log.Debug("measured", zap.Int("qubit", q), zap.Int("bit", r.Int()), zap.Bool("random", r.Random))
	if err := p.record(); err != nil {
		return r, err
	}
	return r, nil
}

// Measure performs a Pauli measurement given as one basis per qubit. Only a
// single Z-basis qubit is supported; PauliI entries are ignored.
func (p *Processor) Measure(bases []Pauli, qubits []int) (tableau.Result, error) {
	if len(bases) != len(qubits) {
		return tableau.Result{}, p.reject(tableau.Unsupported("Measure",
			fmt.Sprintf("%d bases given for %d qubits", len(bases), len(qubits))))
	}
	target := -1
	for i, b := range bases {
		switch b {
		case PauliI:
			continue
		case PauliZ:
			if target >= 0 {
				return tableau.Result{}, p.reject(tableau.Unsupported("Measure", "only single-qubit measurement is supported"))
			}
			target = qubits[i]
		case PauliX, PauliY:
			return tableau.Result{}, p.reject(tableau.Unsupported("Measure",
				fmt.Sprintf("%v basis measurement is not supported, only Z", b)))
		default:
			return tableau.Result{}, p.reject(tableau.Unsupported("Measure", fmt.Sprintf("unknown basis %v", b)))
		}
	}
	if target < 0 {
		return tableau.Result{}, p.reject(tableau.Unsupported("Measure", "no qubit is measured in the Z basis"))
	}
	return p.M(target)
}

func (p *Processor) gate(name string, err error) error {
	if err != nil {
		return p.reject(err)
	}
	p.stats.Gates++
	p.log.Debug("applied gate", zap.String("gate", name))
	return p.record()
}

func (p *Processor) reject(err error) error {
	p.stats.Rejected++
	var ue *tableau.UnsupportedOperationError
	if errors.As(err, &ue) {
		p.log.Warn("rejected operation", zap.String("op", ue.Op), zap.String("reason", ue.Reason))
	} else {
		p.log.Warn("rejected operation", zap.Error(err))
	}
	return err
}

func (p *Processor) record() error {
	if p.trace == nil {
		return nil
	}
	if err := p.trace.Write(p.t); err != nil {
		return fmt.Errorf("writing trace: %w", err)
	}
	return nil
}
