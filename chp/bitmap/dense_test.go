package bitmap

import (
	"testing"
)

func TestNewDense(t *testing.T) {
	tcs := []struct {
		name  string
		data  []byte
		n     int
		ebits []byte
		elen  int
	}{
		{"inferred length", []byte{0xA5, 0x01}, -1, []byte{0xA5, 0x01}, 16},
		{"padded", []byte{0xFF}, 12, []byte{0xFF, 0x00}, 12},
		{"truncated", []byte{0xFF, 0xFF, 0xFF}, 9, []byte{0xFF, 0x01}, 9},
		{"empty", nil, 0, []byte{}, 0},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDense(tc.data, tc.n)
			if d.Size() != tc.elen || d.SizeBytes() != len(tc.ebits) {
				t.Fatalf("got %d bits in %d bytes, want %d in %d", d.Size(), d.SizeBytes(), tc.elen, len(tc.ebits))
			}
			for i, b := range tc.ebits {
				if d.Data()[i] != b {
					t.Errorf("byte %d == %08b, want %08b", i, d.Data()[i], b)
				}
			}
		})
	}
}

func TestNewDenseCopies(t *testing.T) {
	data := []byte{0x0F}
	d := NewDense(data, 8)
	data[0] = 0
	if !d.Get(0) {
		t.Errorf("NewDense aliased its input")
	}
}

func TestDenseBits(t *testing.T) {
	d := Zeros(11)
	for _, i := range []int{0, 7, 8, 10} {
		d.Set(i, true)
	}
	d.Flip(7)
	d.Flip(3)
	d.Set(10, false)
	want := "1001 0000 100"
	if !Equal(d, mustDense(t, want)) {
		t.Errorf("got %08b, want %s", d.Data(), want)
	}
	if d.Get(-1) || d.Get(11) {
		t.Errorf("out of range Get returned true")
	}
}

func TestDenseOutOfRangePanics(t *testing.T) {
	for name, f := range map[string]func(d *Dense){
		"Set":  func(d *Dense) { d.Set(4, true) },
		"Flip": func(d *Dense) { d.Flip(-1) },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("%s out of range did not panic", name)
				}
			}()
			d := Zeros(4)
			f(&d)
		})
	}
}

func TestDenseSwap(t *testing.T) {
	tcs := []struct {
		in   string
		i, j int
		eout string
	}{
		{"1000 0000 0", 0, 8, "0000 0000 1"},
		{"1000 0000 1", 0, 8, "1000 0000 1"},
		{"0110", 1, 2, "0110"},
		{"0100", 2, 1, "0010"},
	}
	for _, tc := range tcs {
		d := mustDense(t, tc.in)
		d.Swap(tc.i, tc.j)
		if !Equal(d, mustDense(t, tc.eout)) {
			t.Errorf("Swap(%d, %d) on %s == %08b, want %s", tc.i, tc.j, tc.in, d.Data(), tc.eout)
		}
	}
}

func TestDenseClone(t *testing.T) {
	d := mustDense(t, "101")
	c := d.Clone()
	c.Flip(1)
	if d.Get(1) {
		t.Errorf("mutating a clone changed the original")
	}
}

func TestXOrWith(t *testing.T) {
	tcs := []struct {
		name string
		d, o string
		eout string
	}{
		{"same length", "1100 1", "1010 1", "0110 0"},
		{"longer operand is cut", "110", "0111 1111", "101"},
		{"shorter operand", "1111 1111 1", "1", "0111 1111 1"},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			d := mustDense(t, tc.d)
			d.XOrWith(mustDense(t, tc.o))
			if !Equal(d, mustDense(t, tc.eout)) {
				t.Errorf("%s ^ %s == %08b, want %s", tc.d, tc.o, d.Data(), tc.eout)
			}
		})
	}
}
