// Package bitmap holds fixed-length bit vectors over GF(2), packed eight to a
// byte, as used for the rows of a stabilizer tableau.
package bitmap

import (
	"bytes"
	"fmt"
	"math/bits"
)

const byteSize = 8

// Zeros returns a dense bitmap of n bits, all cleared.
func Zeros(n int) Dense {
	return NewDense(nil, n)
}

// FromString parses a string of '1's and '0's, most convenient in tests.
// Spaces are ignored.
func FromString(s string) (Dense, error) {
	var vals []bool
	for _, c := range s {
		switch c {
		case '0', '1':
			vals = append(vals, c == '1')
		case ' ':
		default:
			return Dense{}, fmt.Errorf("invalid character %q in bitmap %q", c, s)
		}
	}
	d := Zeros(len(vals))
	for i, v := range vals {
		d.Set(i, v)
	}
	return d, nil
}

// Dot returns the GF(2) inner product of x and y over their common prefix.
func Dot(x, y Dense) bool {
	n := len(x.bits)
	if len(y.bits) < n {
		n = len(y.bits)
	}
	ones := 0
	for i := 0; i < n; i++ {
		ones += bits.OnesCount8(x.bits[i] & y.bits[i])
	}
	return ones&1 == 1
}

// Equal reports whether a and b have the same length and bits.
func Equal(a, b Dense) bool {
	return a.len == b.len && bytes.Equal(a.bits, b.bits)
}

// BytesFor returns the number of bytes needed to hold n bits.
func BytesFor(n int) int {
	return (n + byteSize - 1) / byteSize
}
