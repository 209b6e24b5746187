// Package chp exposes a stabilizer-circuit processor built on the CHP tableau
// algorithm. A Processor accepts gate and measurement calls by qubit index,
// the way a host simulation runtime dispatches them, and rejects anything
// outside the Clifford gate set plus Z-basis measurement.
package chp

import (
	"crypto/rand"
	"errors"
	"io"

	"github.com/alan-christopher/chp/chp/tableau"
	"go.uber.org/zap"
)

var (
	DefaultQubits = 2
)

// Stats packages together counters describing the work a Processor has done.
type Stats struct {
	Gates              int
	Measurements       int
	RandomMeasurements int
	Rejected           int
}

// A ProcessorOpts packages together the arguments necessary to construct a new
// Processor.
type ProcessorOpts struct {
	// Qubits specifies the number of qubits to simulate. Defaults to
	// DefaultQubits. Must not be negative.
	Qubits int

	// Rand provides the outcomes of non-deterministic measurements. A seeded
	// source gives repeatable runs. Defaults to crypto/rand.
	Rand tableau.RandomSource

	// Logger receives a warning for every rejected operation, and debug
	// output for every accepted one. Defaults to a no-op logger.
	Logger *zap.Logger

	// Trace, if non-nil, receives a length-prefixed binary snapshot of the
	// tableau on construction and after every accepted operation. See
	// ReadTrace.
	Trace io.Writer
}

// A Processor applies Clifford operations and Z-basis measurements to a single
// stabilizer state. A Processor is not safe for concurrent use; independent
// circuits should use independent Processors.
type Processor struct {
	t     *tableau.Tableau
	rand  tableau.RandomSource
	log   *zap.Logger
	trace *frameWriter
	stats Stats
}

// NewProcessor returns a new Processor in the all-zeros state, configured in
// accordance with opts, or an error if the options are nonsensical.
func NewProcessor(opts ProcessorOpts) (*Processor, error) {
	if opts.Qubits < 0 {
		return nil, errors.New("Qubits must not be negative")
	}
	n := opts.Qubits
	if n == 0 {
		n = DefaultQubits
	}
	t, err := tableau.New(n)
	if err != nil {
		return nil, err
	}
	src := opts.Rand
	if src == nil {
		src = tableau.NewReaderSource(rand.Reader)
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &Processor{
		t:    t,
		rand: src,
		log:  logger.With(zap.Int("qubits", n)),
	}
	if opts.Trace != nil {
		p.trace = &frameWriter{w: opts.Trace}
		if err := p.trace.Write(t); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Qubits returns the number of simulated qubits.
func (p *Processor) Qubits() int {
	return p.t.Qubits()
}

// Tableau returns a copy of the current tableau.
func (p *Processor) Tableau() *tableau.Tableau {
	return p.t.Clone()
}

// Stats returns the counters accumulated so far.
func (p *Processor) Stats() Stats {
	return p.stats
}
