package tableau

import (
	"fmt"

	"github.com/alan-christopher/chp/chp/bitmap"
)

// Validate checks that t encodes a stabilizer group together with a matching
// set of destabilizers: stabilizers (and likewise destabilizers) pairwise
// commute, destabilizer i anticommutes with stabilizer i and with no other
// stabilizer, and the stabilizers are independent.
func (t *Tableau) Validate() error {
	if t.n < 1 || len(t.rows) != 2*t.n {
		return fmt.Errorf("tableau has %d rows for %d qubits", len(t.rows), t.n)
	}
	for i, r := range t.rows {
		if r.Size() != t.Cols() {
			return fmt.Errorf("row %d has %d columns, want %d", i, r.Size(), t.Cols())
		}
	}
	xs, zs, err := t.halves()
	if err != nil {
		return err
	}
	anti := func(a, b int) bool {
		return bitmap.Dot(xs[a], zs[b]) != bitmap.Dot(zs[a], xs[b])
	}
	for i := 0; i < t.n; i++ {
		for j := i + 1; j < t.n; j++ {
			if anti(t.n+i, t.n+j) {
				return fmt.Errorf("stabilizers %d and %d anticommute", i, j)
			}
			if anti(i, j) {
				return fmt.Errorf("destabilizers %d and %d anticommute", i, j)
			}
		}
		for j := 0; j < t.n; j++ {
			if want := i == j; anti(i, t.n+j) != want {
				return fmt.Errorf("destabilizer %d and stabilizer %d: anticommute == %v, want %v", i, j, !want, want)
			}
		}
	}
	if k := rank(t.rows[t.n:], t.r()); k != t.n {
		return fmt.Errorf("stabilizers have rank %d, want %d", k, t.n)
	}
	return nil
}

func (t *Tableau) halves() (xs, zs []bitmap.Dense, err error) {
	for i, r := range t.rows {
		x, err := bitmap.Slice(r, 0, t.n)
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: %w", i, err)
		}
		z, err := bitmap.Slice(r, t.n, 2*t.n)
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: %w", i, err)
		}
		xs = append(xs, x)
		zs = append(zs, z)
	}
	return xs, zs, nil
}

// rank returns the GF(2) rank of the first width columns of rows.
func rank(rows []bitmap.Dense, width int) int {
	var vs []bitmap.Dense
	for _, r := range rows {
		v, _ := bitmap.Slice(r, 0, width)
		vs = append(vs, v)
	}
	k := 0
	for c := 0; c < width && k < len(vs); c++ {
		p := -1
		for i := k; i < len(vs); i++ {
			if vs[i].Get(c) {
				p = i
				break
			}
		}
		if p < 0 {
			continue
		}
		vs[k], vs[p] = vs[p], vs[k]
		for i := range vs {
			if i != k && vs[i].Get(c) {
				vs[i].XOrWith(vs[k])
			}
		}
		k++
	}
	return k
}
