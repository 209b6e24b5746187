package tableau

import (
	"errors"
	"fmt"
	"io"
)

// A RandomSource supplies the outcomes of non-deterministic measurements.
type RandomSource interface {
	// Bit returns a uniformly random bit. An error aborts the measurement
	// that requested it.
	Bit() (bool, error)
}

// A ReaderSource draws one byte from an io.Reader per bit. Both crypto/rand's
// Reader and a seeded *math/rand.Rand make suitable readers.
type ReaderSource struct {
	r   io.Reader
	buf [1]byte
}

// NewReaderSource returns a RandomSource backed by r.
func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{r: r}
}

// Bit implements RandomSource.
func (s *ReaderSource) Bit() (bool, error) {
	if _, err := io.ReadFull(s.r, s.buf[:]); err != nil {
		return false, fmt.Errorf("reading random bit: %w", err)
	}
	return s.buf[0]&1 == 1, nil
}

// ErrExhausted is returned by a FixedSource that has no outcomes left.
var ErrExhausted = errors.New("fixed random source exhausted")

// A FixedSource replays a predetermined sequence of outcomes.
type FixedSource struct {
	Bits []bool
}

// Bit implements RandomSource.
func (s *FixedSource) Bit() (bool, error) {
	if len(s.Bits) == 0 {
		return false, ErrExhausted
	}
	b := s.Bits[0]
	s.Bits = s.Bits[1:]
	return b, nil
}
