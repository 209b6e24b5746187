package circuit

import (
	"fmt"

	"github.com/alan-christopher/chp/chp"
	"github.com/alan-christopher/chp/chp/tableau"
)

// An Outcome is the result of one measurement in a Program.
type Outcome struct {
	Qubit  int
	Result tableau.Result
}

func (o Outcome) String() string {
	return fmt.Sprintf("Outcome of measuring qubit %d: %v", o.Qubit, o.Result)
}

// Run applies every instruction of the program to p in order, returning the
// measurement outcomes. It stops at the first instruction p refuses,
// returning the outcomes gathered so far.
func (prog *Program) Run(p *chp.Processor) ([]Outcome, error) {
	if p.Qubits() < prog.Qubits {
		return nil, fmt.Errorf("program needs %d qubits, processor has %d", prog.Qubits, p.Qubits())
	}
	var outs []Outcome
	for i, op := range prog.Ops {
		r, err := p.Apply(op)
		if err != nil {
			return outs, fmt.Errorf("%s: %w", prog.where(i), err)
		}
		if r == nil {
			continue
		}
		outs = append(outs, Outcome{Qubit: measured(op), Result: *r})
	}
	return outs, nil
}

func measured(op chp.Op) int {
	switch op := op.(type) {
	case chp.M:
		return op.Target
	case chp.Measure:
		for i, b := range op.Bases {
			if b == chp.PauliZ {
				return op.Qubits[i]
			}
		}
	}
	return -1
}

func (prog *Program) where(i int) string {
	if i < len(prog.lines) {
		return fmt.Sprintf("line %d (%v)", prog.lines[i], prog.Ops[i])
	}
	return fmt.Sprintf("instruction %d (%v)", i, prog.Ops[i])
}
