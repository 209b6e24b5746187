package bitmap

// A Dense is a bitmap where every bit is explicitly represented. Bits past
// Size() in the final byte are always zero.
type Dense struct {
	bits []byte
	len  int
}

// NewDense returns an n-bit bitmap initialized from a copy of data. Missing
// bytes read as zero and excess bits are dropped. A negative n takes the
// length from data.
func NewDense(data []byte, n int) Dense {
	if n < 0 {
		n = len(data) * byteSize
	}
	d := Dense{bits: make([]byte, BytesFor(n)), len: n}
	copy(d.bits, data)
	d.fixLastByte()
	return d
}

func locate(i int) (int, byte) {
	return i / byteSize, 1 << (i % byteSize)
}

// Get reports whether bit i is set. Indices out of range read as unset.
func (d Dense) Get(i int) bool {
	if i < 0 || i >= d.len {
		return false
	}
	j, mask := locate(i)
	return d.bits[j]&mask != 0
}

// Size returns the length of d in bits.
func (d Dense) Size() int { return d.len }

// SizeBytes returns the length of d in bytes.
func (d Dense) SizeBytes() int { return len(d.bits) }

// Data returns the packed bytes of d, least significant bit first. The slice
// aliases d.
func (d Dense) Data() []byte { return d.bits }

// Clone returns a deep copy of d.
func (d Dense) Clone() Dense {
	return NewDense(d.bits, d.len)
}

// Set assigns bit i. It panics if i is out of range.
func (d *Dense) Set(i int, v bool) {
	d.check(i)
	j, mask := locate(i)
	if v {
		d.bits[j] |= mask
	} else {
		d.bits[j] &^= mask
	}
}

// Flip inverts bit i. It panics if i is out of range.
func (d *Dense) Flip(i int) {
	d.check(i)
	j, mask := locate(i)
	d.bits[j] ^= mask
}

// Swap exchanges bits i and j.
func (d *Dense) Swap(i, j int) {
	if d.Get(i) != d.Get(j) {
		d.Flip(i)
		d.Flip(j)
	}
}

// XOrWith replaces d with the bitwise XOR of d and o, in place. Bits of o past
// the end of d are ignored.
func (d *Dense) XOrWith(o Dense) {
	n := len(d.bits)
	if len(o.bits) < n {
		n = len(o.bits)
	}
	for i := 0; i < n; i++ {
		d.bits[i] ^= o.bits[i]
	}
	d.fixLastByte()
}

func (d *Dense) check(i int) {
	if i < 0 || i >= d.len {
		panic(fmtIndex(i, d.len))
	}
}

func (d *Dense) fixLastByte() {
	if off := d.len % byteSize; off != 0 {
		d.bits[len(d.bits)-1] &= 0xFF >> (byteSize - off)
	}
}
