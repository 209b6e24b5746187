package bitmap

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers of the DenseBitArray message:
//
//	message DenseBitArray {
//	  bytes bits = 1;
//	  int32 len = 2;
//	}
const (
	fieldBits protowire.Number = 1
	fieldLen  protowire.Number = 2
)

// AppendProto appends the DenseBitArray wire encoding of d to b.
func (d Dense) AppendProto(b []byte) []byte {
	b = protowire.AppendTag(b, fieldBits, protowire.BytesType)
	b = protowire.AppendBytes(b, d.bits)
	b = protowire.AppendTag(b, fieldLen, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(int32(d.len)))
	return b
}

// DenseFromProto decodes a DenseBitArray message. Unknown fields are skipped.
func DenseFromProto(b []byte) (Dense, error) {
	var data []byte
	bitLen := -1
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return Dense{}, protowire.ParseError(n)
		}
		b = b[n:]
		switch {
		case num == fieldBits && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return Dense{}, protowire.ParseError(n)
			}
			data = v
			b = b[n:]
		case num == fieldLen && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return Dense{}, protowire.ParseError(n)
			}
			bitLen = int(int32(v))
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return Dense{}, protowire.ParseError(n)
			}
			b = b[n:]
		}
	}
	if bitLen < 0 {
		return Dense{}, errors.New("DenseBitArray missing or negative len")
	}
	if len(data) > BytesFor(bitLen) {
		return Dense{}, fmt.Errorf("DenseBitArray holds %d bytes for %d bits", len(data), bitLen)
	}
	return NewDense(data, bitLen), nil
}
