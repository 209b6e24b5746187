package chp

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/alan-christopher/chp/chp/tableau"
)

// A frameWriter writes framed tableau snapshots to the wire. The structure of
// the frame is trivial: snapshot-length | snapshot, with the length a
// little-endian int32 and the snapshot as produced by
// tableau.Tableau.MarshalBinary.
type frameWriter struct {
	w io.Writer
}

func (f *frameWriter) Write(t *tableau.Tableau) error {
	marshalled, err := t.MarshalBinary()
	if err != nil {
		return err
	}
	if err := binary.Write(f.w, binary.LittleEndian, int32(len(marshalled))); err != nil {
		return err
	}
	if _, err := f.w.Write(marshalled); err != nil {
		return err
	}
	return nil
}

// A TraceReader decodes the snapshots a Processor writes to its Trace.
type TraceReader struct {
	r io.Reader
}

// NewTraceReader returns a TraceReader consuming r.
func NewTraceReader(r io.Reader) *TraceReader {
	return &TraceReader{r: r}
}

// Next returns the next snapshot, or io.EOF once the trace ends cleanly on a
// frame boundary.
func (tr *TraceReader) Next() (*tableau.Tableau, error) {
	var mLen int32
	if err := binary.Read(tr.r, binary.LittleEndian, &mLen); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("reading frame length: %w", err)
	}
	if mLen < 0 {
		return nil, fmt.Errorf("negative frame length %d", mLen)
	}
	marshalled := make([]byte, mLen)
	if _, err := io.ReadFull(tr.r, marshalled); err != nil {
		return nil, fmt.Errorf("reading %d byte frame: %w", mLen, err)
	}
	t := new(tableau.Tableau)
	if err := t.UnmarshalBinary(marshalled); err != nil {
		return nil, err
	}
	return t, nil
}

// ReadTrace decodes every snapshot in r.
func ReadTrace(r io.Reader) ([]*tableau.Tableau, error) {
	tr := NewTraceReader(r)
	var ts []*tableau.Tableau
	for {
		t, err := tr.Next()
		if err == io.EOF {
			return ts, nil
		}
		if err != nil {
			return ts, fmt.Errorf("frame %d: %w", len(ts), err)
		}
		ts = append(ts, t)
	}
}
