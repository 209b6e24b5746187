package tableau

import (
	"fmt"

	"github.com/alan-christopher/chp/chp/bitmap"
	"google.golang.org/protobuf/encoding/protowire"
)

// Snapshots use the protocol buffer wire format:
//
//	message Tableau {
//	  int32 qubits = 1;
//	  repeated DenseBitArray rows = 2;
//	}
const (
	fieldQubits protowire.Number = 1
	fieldRows   protowire.Number = 2
)

// MarshalBinary implements encoding.BinaryMarshaler.
func (t *Tableau) MarshalBinary() ([]byte, error) {
	var b []byte
	b = protowire.AppendTag(b, fieldQubits, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(int32(t.n)))
	for _, r := range t.rows {
		b = protowire.AppendTag(b, fieldRows, protowire.BytesType)
		b = protowire.AppendBytes(b, r.AppendProto(nil))
	}
	return b, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The decoded tableau
// must pass Validate.
func (t *Tableau) UnmarshalBinary(b []byte) error {
	var (
		n    int
		rows []bitmap.Dense
	)
	for len(b) > 0 {
		num, typ, k := protowire.ConsumeTag(b)
		if k < 0 {
			return fmt.Errorf("decoding tableau: %w", protowire.ParseError(k))
		}
		b = b[k:]
		switch {
		case num == fieldQubits && typ == protowire.VarintType:
			v, k := protowire.ConsumeVarint(b)
			if k < 0 {
				return fmt.Errorf("decoding tableau qubits: %w", protowire.ParseError(k))
			}
			n = int(int32(v))
			b = b[k:]
		case num == fieldRows && typ == protowire.BytesType:
			v, k := protowire.ConsumeBytes(b)
			if k < 0 {
				return fmt.Errorf("decoding tableau row %d: %w", len(rows), protowire.ParseError(k))
			}
			r, err := bitmap.DenseFromProto(v)
			if err != nil {
				return fmt.Errorf("decoding tableau row %d: %w", len(rows), err)
			}
			rows = append(rows, r)
			b = b[k:]
		default:
			k := protowire.ConsumeFieldValue(num, typ, b)
			if k < 0 {
				return fmt.Errorf("decoding tableau: %w", protowire.ParseError(k))
			}
			b = b[k:]
		}
	}
	d := Tableau{n: n, rows: rows}
	if err := d.Validate(); err != nil {
		return fmt.Errorf("decoded tableau is invalid: %w", err)
	}
	*t = d
	return nil
}
