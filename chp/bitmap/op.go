package bitmap

import "fmt"

// Slice creates a copy of the bits [start, end) of d.
func Slice(d Dense, start, end int) (Dense, error) {
	if start < 0 {
		return Dense{}, fmt.Errorf("slicing bitmap with negative start: %d", start)
	}
	if end < start {
		return Dense{}, fmt.Errorf("slicing bitmap to negative length: %d", end-start)
	}
	if end > d.len {
		return Dense{}, fmt.Errorf("slicing bitmap of len %d up to %d", d.len, end)
	}
	if start%byteSize == 0 {
		return NewDense(d.bits[start/byteSize:], end-start), nil
	}
	r := Zeros(end - start)
	for i := start; i < end; i++ {
		if d.Get(i) {
			r.Flip(i - start)
		}
	}
	return r, nil
}

func fmtIndex(i, n int) string {
	return fmt.Sprintf("bitmap index %d out of range [0, %d)", i, n)
}
