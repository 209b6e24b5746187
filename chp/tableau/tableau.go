// Package tableau implements the CHP stabilizer tableau: a 2n x (2n+1) binary
// matrix whose rows are the destabilizer and stabilizer generators of an
// n-qubit stabilizer state, together with the Clifford gate and Z-basis
// measurement rules that evolve it.
//
// Rows 0..n-1 are destabilizers, rows n..2n-1 are stabilizers. Within a row
// columns 0..n-1 hold X bits, columns n..2n-1 hold Z bits and column 2n holds
// the sign bit (set means -1).
//
// A Tableau is not safe for concurrent use.
package tableau

import (
	"fmt"
	"strings"

	"github.com/alan-christopher/chp/chp/bitmap"
)

// A Kind selects the X or Z component of a generator on a qubit.
type Kind int

const (
	X Kind = iota
	Z
)

func (k Kind) String() string {
	switch k {
	case X:
		return "X"
	case Z:
		return "Z"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// A Tableau holds the stabilizer state of a fixed number of qubits.
type Tableau struct {
	n    int
	rows []bitmap.Dense
}

// New returns the identity tableau on n qubits, i.e. the state |0...0>, with
// destabilizer i = +X_i and stabilizer i = +Z_i.
func New(n int) (*Tableau, error) {
	if n < 1 {
		return nil, fmt.Errorf("tableau needs at least one qubit, got %d: %w", n, ErrInvalidIndex)
	}
	t := &Tableau{n: n, rows: make([]bitmap.Dense, 2*n)}
	for i := range t.rows {
		t.rows[i] = bitmap.Zeros(2*n + 1)
		t.rows[i].Set(i, true)
	}
	return t, nil
}

// Qubits returns the number of qubits n.
func (t *Tableau) Qubits() int { return t.n }

// Rows returns the number of generator rows, 2n.
func (t *Tableau) Rows() int { return 2 * t.n }

// Cols returns the number of columns, 2n+1.
func (t *Tableau) Cols() int { return 2*t.n + 1 }

func (t *Tableau) x(q int) int { return q }
func (t *Tableau) z(q int) int { return t.n + q }
func (t *Tableau) r() int      { return 2 * t.n }

func (t *Tableau) col(k Kind, q int) int {
	if q < 0 || q >= t.n {
		panic(fmt.Sprintf("tableau qubit %d out of range [0, %d)", q, t.n))
	}
	switch k {
	case X:
		return t.x(q)
	case Z:
		return t.z(q)
	}
	panic(fmt.Sprintf("tableau: unknown kind %v", k))
}

func (t *Tableau) row(i int) *bitmap.Dense {
	if i < 0 || i >= len(t.rows) {
		panic(fmt.Sprintf("tableau row %d out of range [0, %d)", i, len(t.rows)))
	}
	return &t.rows[i]
}

// IsStabilizer reports whether row i is a stabilizer (as opposed to a
// destabilizer) generator.
func (t *Tableau) IsStabilizer(i int) bool {
	t.row(i)
	return i >= t.n
}

// Bit returns the k-component of generator row on qubit q.
func (t *Tableau) Bit(row int, k Kind, q int) bool {
	return t.row(row).Get(t.col(k, q))
}

// SetBit assigns the k-component of generator row on qubit q.
func (t *Tableau) SetBit(row int, k Kind, q int, v bool) {
	t.row(row).Set(t.col(k, q), v)
}

// Sign returns the sign bit of a generator row; true means -1.
func (t *Tableau) Sign(row int) bool {
	return t.row(row).Get(t.r())
}

// SetSign assigns the sign bit of a generator row.
func (t *Tableau) SetSign(row int, v bool) {
	t.row(row).Set(t.r(), v)
}

// Get returns the raw bit at (row, col).
func (t *Tableau) Get(row, col int) bool {
	r := t.row(row)
	if col < 0 || col >= t.Cols() {
		panic(fmt.Sprintf("tableau column %d out of range [0, %d)", col, t.Cols()))
	}
	return r.Get(col)
}

// Row returns a copy of generator row i.
func (t *Tableau) Row(i int) bitmap.Dense {
	return t.row(i).Clone()
}

// Column returns a copy of column c, indexed by row.
func (t *Tableau) Column(c int) bitmap.Dense {
	col := bitmap.Zeros(t.Rows())
	for i := range t.rows {
		if t.Get(i, c) {
			col.Flip(i)
		}
	}
	return col
}

// SwapColumns exchanges columns a and b in every row.
func (t *Tableau) SwapColumns(a, b int) {
	t.Get(0, a)
	t.Get(0, b)
	for i := range t.rows {
		t.rows[i].Swap(a, b)
	}
}

// SwapRows exchanges generator rows a and b.
func (t *Tableau) SwapRows(a, b int) {
	t.row(a)
	t.row(b)
	t.rows[a], t.rows[b] = t.rows[b], t.rows[a]
}

// RowSum replaces row h with the Pauli product of row i and row h, tracking
// the resulting sign.
func (t *Tableau) RowSum(h, i int) {
	rowSum(t.row(h), *t.row(i), t.n)
}

// rowSum sets h to i*h. Both rows must hold n qubits plus a sign bit.
func rowSum(h *bitmap.Dense, i bitmap.Dense, n int) {
	sum := 0
	if h.Get(2 * n) {
		sum += 2
	}
	if i.Get(2 * n) {
		sum += 2
	}
	for j := 0; j < n; j++ {
		sum += phaseExponent(i.Get(j), i.Get(n+j), h.Get(j), h.Get(n+j))
	}
	h.XOrWith(i)
	h.Set(2*n, ((sum%4)+4)%4 != 0)
}

// phaseExponent returns the power of i picked up when multiplying the
// single-qubit Pauli (x1, z1) onto (x2, z2).
func phaseExponent(x1, z1, x2, z2 bool) int {
	b := func(v bool) int {
		if v {
			return 1
		}
		return 0
	}
	switch {
	case !x1 && !z1:
		return 0
	case x1 && z1:
		return b(z2) - b(x2)
	case x1 && !z1:
		return b(z2) * (2*b(x2) - 1)
	default:
		return b(x2) * (1 - 2*b(z2))
	}
}

// Clone returns a deep copy of t.
func (t *Tableau) Clone() *Tableau {
	c := &Tableau{n: t.n, rows: make([]bitmap.Dense, len(t.rows))}
	for i, r := range t.rows {
		c.rows[i] = r.Clone()
	}
	return c
}

// Pauli returns generator row i as a signed Pauli string, e.g. "-XIZ".
func (t *Tableau) Pauli(i int) string {
	var sb strings.Builder
	if t.Sign(i) {
		sb.WriteByte('-')
	} else {
		sb.WriteByte('+')
	}
	for q := 0; q < t.n; q++ {
		switch x, z := t.Bit(i, X, q), t.Bit(i, Z, q); {
		case x && z:
			sb.WriteByte('Y')
		case x:
			sb.WriteByte('X')
		case z:
			sb.WriteByte('Z')
		default:
			sb.WriteByte('I')
		}
	}
	return sb.String()
}

// Stabilizers returns the stabilizer generators as signed Pauli strings.
func (t *Tableau) Stabilizers() []string {
	var r []string
	for i := t.n; i < 2*t.n; i++ {
		r = append(r, t.Pauli(i))
	}
	return r
}

// Destabilizers returns the destabilizer generators as signed Pauli strings.
func (t *Tableau) Destabilizers() []string {
	var r []string
	for i := 0; i < t.n; i++ {
		r = append(r, t.Pauli(i))
	}
	return r
}
