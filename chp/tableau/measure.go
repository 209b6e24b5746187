package tableau

import (
	"fmt"

	"github.com/alan-christopher/chp/chp/bitmap"
)

// A Result is the outcome of a computational basis measurement.
type Result struct {
	// Bit is the measured value, true meaning |1>.
	Bit bool
	// Random is true iff the outcome was drawn from the RandomSource, i.e.
	// the qubit was not in a Z eigenstate before the measurement.
	Random bool
}

// Int returns the measured value as 0 or 1.
func (r Result) Int() int {
	if r.Bit {
		return 1
	}
	return 0
}

func (r Result) String() string {
	if r.Random {
		return fmt.Sprintf("%d (random)", r.Int())
	}
	return fmt.Sprintf("%d (determinate)", r.Int())
}

// Measure measures qubit q in the Z basis, collapsing the state. src is only
// consulted when the outcome is not already determined; if it fails the
// tableau is left unchanged.
func (t *Tableau) Measure(q int, src RandomSource) (Result, error) {
	if err := t.CheckQubit(q); err != nil {
		return Result{}, err
	}
	p := t.pivot(q)
	if p < 0 {
		return Result{Bit: t.determinate(q)}, nil
	}
	if src == nil {
		return Result{}, fmt.Errorf("measuring qubit %d: outcome is random but no source was provided", q)
	}
	bit, err := src.Bit()
	if err != nil {
		return Result{}, fmt.Errorf("measuring qubit %d: %w", q, err)
	}
	t.collapse(q, p, bit)
	return Result{Bit: bit, Random: true}, nil
}

// IsDeterministic reports whether measuring qubit q would yield a fixed
// outcome, without measuring it.
func (t *Tableau) IsDeterministic(q int) (bool, error) {
	if err := t.CheckQubit(q); err != nil {
		return false, err
	}
	return t.pivot(q) < 0, nil
}

// pivot returns the first stabilizer row with an X component on q, or -1 if
// every stabilizer commutes with Z_q.
func (t *Tableau) pivot(q int) int {
	x := t.x(q)
	for i := t.n; i < 2*t.n; i++ {
		if t.rows[i].Get(x) {
			return i
		}
	}
	return -1
}

// collapse projects onto the Z_q eigenstate with eigenvalue (-1)^bit, given a
// stabilizer pivot p anticommuting with Z_q.
func (t *Tableau) collapse(q, p int, bit bool) {
	x := t.x(q)
	for i := range t.rows {
		if i != p && t.rows[i].Get(x) {
			rowSum(&t.rows[i], t.rows[p], t.n)
		}
	}
	// The old destabilizer is replaced, not merged.
	t.rows[p-t.n] = t.rows[p]
	t.rows[p] = bitmap.Zeros(t.Cols())
	t.rows[p].Set(t.z(q), true)
	t.rows[p].Set(t.r(), bit)
}

// determinate computes the fixed outcome of measuring q by multiplying
// together the stabilizers whose destabilizer partners anticommute with Z_q.
func (t *Tableau) determinate(q int) bool {
	x := t.x(q)
	scratch := bitmap.Zeros(t.Cols())
	for i := 0; i < t.n; i++ {
		if t.rows[i].Get(x) {
			rowSum(&scratch, t.rows[i+t.n], t.n)
		}
	}
	return scratch.Get(t.r())
}
