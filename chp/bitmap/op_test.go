package bitmap

import (
	"testing"
)

func TestSlice(t *testing.T) {
	row := "0110 1001 0011 1"
	tcs := []struct {
		name       string
		start, end int
		eout       string
	}{
		{"x half", 0, 6, "0110 10"},
		{"aligned tail", 8, 13, "0011 1"},
		{"straddling", 6, 10, "0100"},
		{"single bit", 12, 13, "1"},
		{"empty", 5, 5, ""},
		{"whole", 0, 13, row},
	}
	d := mustDense(t, row)
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			out, err := Slice(d, tc.start, tc.end)
			if err != nil {
				t.Fatalf("Slice(%d, %d): %v", tc.start, tc.end, err)
			}
			if !Equal(out, mustDense(t, tc.eout)) {
				t.Errorf("Slice(%d, %d) == %08b (len %d), want %s", tc.start, tc.end, out.Data(), out.Size(), tc.eout)
			}
		})
	}
}

func TestSliceCopies(t *testing.T) {
	d := mustDense(t, "1111 1111")
	s, err := Slice(d, 0, 4)
	if err != nil {
		t.Fatal(err)
	}
	s.Flip(0)
	if !d.Get(0) {
		t.Errorf("mutating a slice changed the original")
	}
}

func TestSliceErrors(t *testing.T) {
	d := mustDense(t, "1011")
	for _, r := range [][2]int{{-1, 2}, {3, 2}, {0, 5}} {
		if _, err := Slice(d, r[0], r[1]); err == nil {
			t.Errorf("Slice(%d, %d) succeeded on a 4-bit bitmap", r[0], r[1])
		}
	}
}
