// Package circuit reads stabilizer circuits in the .chp text format and runs
// them on a chp.Processor.
//
// A .chp file optionally opens with free text terminated by a line beginning
// with '#'. Each following non-blank line holds one instruction:
//
//	h 0     Hadamard on qubit 0
//	s 1     phase gate on qubit 1
//	x 0     Pauli X on qubit 0
//	c 0 1   CNOT, control 0, target 1
//	m 1     Z-basis measurement of qubit 1
//
// Opcodes are case-insensitive. The non-Clifford opcodes t, tdg, ccx, rx, ry
// and rz are accepted by the parser so that a circuit containing them fails
// where it is run rather than where it is read.
package circuit

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alan-christopher/chp/chp"
)

// A Program is a parsed circuit.
type Program struct {
	// Description is the free text preceding the '#' line, if any.
	Description string
	// Qubits is one more than the largest qubit index referenced.
	Qubits int
	Ops    []chp.Op

	lines []int
}

// A ParseError reports a malformed instruction.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

type opcode struct {
	arity int
	build func(qs []int) chp.Op
}

func unsupported(name string) opcode {
	return opcode{1, func(qs []int) chp.Op { return chp.Unsupported{Name: name, Qubits: qs} }}
}

var opcodes = map[string]opcode{
	"h":   {1, func(qs []int) chp.Op { return chp.H{Target: qs[0]} }},
	"s":   {1, func(qs []int) chp.Op { return chp.S{Target: qs[0]} }},
	"x":   {1, func(qs []int) chp.Op { return chp.X{Target: qs[0]} }},
	"m":   {1, func(qs []int) chp.Op { return chp.M{Target: qs[0]} }},
	"c":   {2, func(qs []int) chp.Op { return chp.CNOT{Control: qs[0], Target: qs[1]} }},
	"t":   unsupported("t"),
	"tdg": unsupported("tdg"),
	"rx":  unsupported("rx"),
	"ry":  unsupported("ry"),
	"rz":  unsupported("rz"),
	"ccx": {3, func(qs []int) chp.Op { return chp.Unsupported{Name: "ccx", Qubits: qs} }},
}

// Parse reads a .chp program from r.
func Parse(r io.Reader) (*Program, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading circuit: %w", err)
	}

	prog := &Program{}
	start := 0
	for i, l := range lines {
		if strings.HasPrefix(l, "#") {
			prog.Description = strings.TrimSpace(strings.Join(lines[:i], "\n"))
			start = i + 1
			break
		}
	}
	for i := start; i < len(lines); i++ {
		fields := strings.Fields(lines[i])
		if len(fields) == 0 {
			continue
		}
		op, err := parseOp(fields)
		if err != nil {
			return nil, &ParseError{Line: i + 1, Msg: err.Error()}
		}
		prog.Ops = append(prog.Ops, op.op)
		prog.lines = append(prog.lines, i+1)
		for _, q := range op.qubits {
			if q >= prog.Qubits {
				prog.Qubits = q + 1
			}
		}
	}
	return prog, nil
}

type parsed struct {
	op     chp.Op
	qubits []int
}

func parseOp(fields []string) (parsed, error) {
	name := strings.ToLower(fields[0])
	oc, ok := opcodes[name]
	if !ok {
		return parsed{}, fmt.Errorf("unknown instruction %q", fields[0])
	}
	args := fields[1:]
	if len(args) != oc.arity {
		return parsed{}, fmt.Errorf("%s takes %d qubit(s), got %d", name, oc.arity, len(args))
	}
	qs := make([]int, len(args))
	for i, a := range args {
		q, err := strconv.Atoi(a)
		if err != nil || q < 0 {
			return parsed{}, fmt.Errorf("invalid qubit index %q", a)
		}
		qs[i] = q
	}
	return parsed{op: oc.build(qs), qubits: qs}, nil
}
