package tableau

// Hadamard applies H to qubit q, conjugating X <-> Z.
func (t *Tableau) Hadamard(q int) error {
	if err := t.CheckQubit(q); err != nil {
		return err
	}
	t.hadamard(q)
	return nil
}

// Phase applies S to qubit q, conjugating X -> Y and leaving Z fixed.
func (t *Tableau) Phase(q int) error {
	if err := t.CheckQubit(q); err != nil {
		return err
	}
	t.phase(q)
	return nil
}

// CNOT applies a controlled-NOT with the given control and target qubits.
func (t *Tableau) CNOT(control, target int) error {
	if err := t.CheckQubit(control); err != nil {
		return err
	}
	if err := t.CheckQubit(target); err != nil {
		return err
	}
	if control == target {
		return Unsupported("CNOT", "control and target must be distinct qubits")
	}
	t.cnot(control, target)
	return nil
}

// PauliX applies X to qubit q, as H S S H.
func (t *Tableau) PauliX(q int) error {
	if err := t.CheckQubit(q); err != nil {
		return err
	}
	t.hadamard(q)
	t.phase(q)
	t.phase(q)
	t.hadamard(q)
	return nil
}

func (t *Tableau) hadamard(q int) {
	x, z, r := t.x(q), t.z(q), t.r()
	for i := range t.rows {
		row := &t.rows[i]
		row.Swap(x, z)
		// HYH = -Y; x&z is unchanged by the swap.
		if row.Get(x) && row.Get(z) {
			row.Flip(r)
		}
	}
}

func (t *Tableau) phase(q int) {
	x, z, r := t.x(q), t.z(q), t.r()
	for i := range t.rows {
		row := &t.rows[i]
		xb := row.Get(x)
		if xb && row.Get(z) {
			row.Flip(r)
		}
		if xb {
			row.Flip(z)
		}
	}
}

func (t *Tableau) cnot(control, target int) {
	xc, zc := t.x(control), t.z(control)
	xt, zt := t.x(target), t.z(target)
	r := t.r()
	for i := range t.rows {
		row := &t.rows[i]
		xcb, zcb, xtb, ztb := row.Get(xc), row.Get(zc), row.Get(xt), row.Get(zt)
		if xcb && ztb && (xtb == zcb) {
			row.Flip(r)
		}
		if xcb {
			row.Flip(xt)
		}
		if ztb {
			row.Flip(zc)
		}
	}
}
