package tableau

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type gate func(tab *Tableau) error

func h(q int) gate    { return func(tab *Tableau) error { return tab.Hadamard(q) } }
func s(q int) gate    { return func(tab *Tableau) error { return tab.Phase(q) } }
func x(q int) gate    { return func(tab *Tableau) error { return tab.PauliX(q) } }
func cx(c, t int) gate { return func(tab *Tableau) error { return tab.CNOT(c, t) } }

func apply(t *testing.T, tab *Tableau, gates ...gate) {
	for i, g := range gates {
		if err := g(tab); err != nil {
			t.Fatalf("applying gate %d: %v", i, err)
		}
	}
}

func TestGates(t *testing.T) {
	tcs := []struct {
		name  string
		n     int
		gates []gate
		edest []string
		estab []string
	}{
		{"H", 1, []gate{h(0)}, []string{"+Z"}, []string{"+X"}},
		{"HS", 1, []gate{h(0), s(0)}, []string{"+Z"}, []string{"+Y"}},
		{"HSS", 1, []gate{h(0), s(0), s(0)}, []string{"+Z"}, []string{"-X"}},
		{"HSH is -Y", 1, []gate{h(0), s(0), h(0)}, []string{"+X"}, []string{"-Y"}},
		{"X", 1, []gate{x(0)}, []string{"+X"}, []string{"-Z"}},
		{"X on one of two", 2, []gate{x(1)}, []string{"+XI", "+IX"}, []string{"+ZI", "-IZ"}},
		{"CNOT on |00>", 2, []gate{cx(0, 1)}, []string{"+XX", "+IX"}, []string{"+ZI", "+ZZ"}},
		{"Bell pair", 2, []gate{h(0), cx(0, 1)}, []string{"+ZI", "+IX"}, []string{"+XX", "+ZZ"}},
		{"reversed CNOT", 2, []gate{h(1), cx(1, 0)}, []string{"+XI", "+IZ"}, []string{"+ZZ", "+XX"}},
		{"CNOT sign flip", 2, []gate{h(0), cx(0, 1), h(1), cx(0, 1)}, []string{"+ZI", "+ZZ"}, []string{"-YY", "+ZX"}},
		{"CNOT on Y", 2, []gate{h(0), s(0), h(1), s(1), cx(0, 1)}, []string{"+ZI", "+ZZ"}, []string{"+YX", "+ZY"}},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			tab := mustNew(t, tc.n)
			apply(t, tab, tc.gates...)
			if diff := cmp.Diff(tc.edest, tab.Destabilizers()); diff != "" {
				t.Errorf("destabilizers mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.estab, tab.Stabilizers()); diff != "" {
				t.Errorf("stabilizers mismatch (-want +got):\n%s", diff)
			}
			if err := tab.Validate(); err != nil {
				t.Errorf("Validate() == %v", err)
			}
		})
	}
}

func randomGates(r *rand.Rand, n, count int) []gate {
	var gs []gate
	for len(gs) < count {
		q := r.Intn(n)
		switch r.Intn(4) {
		case 0:
			gs = append(gs, h(q))
		case 1:
			gs = append(gs, s(q))
		case 2:
			gs = append(gs, x(q))
		case 3:
			t := r.Intn(n)
			if t == q {
				continue
			}
			gs = append(gs, cx(q, t))
		}
	}
	return gs
}

func TestInvolutions(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	tcs := []struct {
		name string
		op   func(q int) []gate
	}{
		{"HH", func(q int) []gate { return []gate{h(q), h(q)} }},
		{"XX", func(q int) []gate { return []gate{x(q), x(q)} }},
		{"SSSS", func(q int) []gate { return []gate{s(q), s(q), s(q), s(q)} }},
		{"H SS H H SS H", func(q int) []gate { return []gate{h(q), s(q), s(q), h(q), h(q), s(q), s(q), h(q)} }},
		{"CNOT CNOT", func(q int) []gate { return []gate{cx(q, (q+1)%4), cx(q, (q+1)%4)} }},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			tab := mustNew(t, 4)
			apply(t, tab, randomGates(r, 4, 40)...)
			before := generators(tab)
			for q := 0; q < 4; q++ {
				apply(t, tab, tc.op(q)...)
				if diff := cmp.Diff(before, generators(tab)); diff != "" {
					t.Fatalf("%s on qubit %d changed the tableau (-before +after):\n%s", tc.name, q, diff)
				}
			}
		})
	}
}

func TestInvariantPreservation(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	src := NewReaderSource(r)
	for trial := 0; trial < 20; trial++ {
		n := 1 + r.Intn(6)
		tab := mustNew(t, n)
		for step := 0; step < 60; step++ {
			if r.Intn(5) == 0 {
				if _, err := tab.Measure(r.Intn(n), src); err != nil {
					t.Fatalf("trial %d step %d: Measure: %v", trial, step, err)
				}
			} else {
				apply(t, tab, randomGates(r, n, 1)...)
			}
			if err := tab.Validate(); err != nil {
				t.Fatalf("trial %d step %d: invariant broken: %v", trial, step, err)
			}
		}
	}
}

func TestGateIndexErrors(t *testing.T) {
	tcs := []struct {
		name string
		g    gate
	}{
		{"H negative", h(-1)},
		{"S too large", s(2)},
		{"X too large", x(5)},
		{"CNOT control", cx(2, 0)},
		{"CNOT target", cx(0, -3)},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			tab := mustNew(t, 2)
			err := tc.g(tab)
			if !errors.Is(err, ErrInvalidIndex) {
				t.Fatalf("error == %v, want ErrInvalidIndex", err)
			}
			var ie *IndexError
			if !errors.As(err, &ie) || ie.Qubits != 2 {
				t.Errorf("error %v is not an *IndexError for 2 qubits", err)
			}
			if diff := cmp.Diff([]string{"+XI", "+IX", "+ZI", "+IZ"}, generators(tab)); diff != "" {
				t.Errorf("rejected gate modified the tableau (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCNOTRejectsSameQubit(t *testing.T) {
	tab := mustNew(t, 2)
	err := tab.CNOT(1, 1)
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("CNOT(1, 1) error == %v, want ErrUnsupported", err)
	}
	var ue *UnsupportedOperationError
	if !errors.As(err, &ue) || ue.Op != "CNOT" {
		t.Errorf("CNOT(1, 1) error == %#v, want an *UnsupportedOperationError for CNOT", err)
	}
}
