package bitmap

import (
	"testing"

	"google.golang.org/protobuf/encoding/protowire"
)

func TestDenseProto(t *testing.T) {
	d := mustDense(t, "1011 0010 111")
	got, err := DenseFromProto(d.AppendProto(nil))
	if err != nil {
		t.Fatalf("DenseFromProto: %v", err)
	}
	if !Equal(got, d) {
		t.Errorf("round trip == %b (len %d), want %b (len %d)", got.Data(), got.Size(), d.Data(), d.Size())
	}
}

func TestDenseFromProtoSkipsUnknownFields(t *testing.T) {
	b := protowire.AppendTag(nil, 7, protowire.VarintType)
	b = protowire.AppendVarint(b, 99)
	b = mustDense(t, "01").AppendProto(b)
	got, err := DenseFromProto(b)
	if err != nil {
		t.Fatalf("DenseFromProto: %v", err)
	}
	if !Equal(got, mustDense(t, "01")) {
		t.Errorf("decoded %b, want 01", got.Data())
	}
}

func TestDenseFromProtoErrors(t *testing.T) {
	tooMany := protowire.AppendTag(nil, fieldBits, protowire.BytesType)
	tooMany = protowire.AppendBytes(tooMany, []byte{1, 2})
	tooMany = protowire.AppendTag(tooMany, fieldLen, protowire.VarintType)
	tooMany = protowire.AppendVarint(tooMany, 3)

	tcs := []struct {
		name string
		data []byte
	}{
		{"missing len", protowire.AppendBytes(protowire.AppendTag(nil, fieldBits, protowire.BytesType), []byte{1})},
		{"truncated", []byte{0x0A, 0x05, 0x01}},
		{"bits exceed len", tooMany},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DenseFromProto(tc.data); err == nil {
				t.Errorf("DenseFromProto(%v) succeeded, want error", tc.data)
			}
		})
	}
}
