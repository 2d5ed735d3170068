package simdsort

import "math/bits"

// The AVX2 back-end has no 512-bit registers and no k-masks, so a
// logical eight-lane vector is two 256-bit registers of four 64-bit
// lanes, and a mask is a pair of comparison-result registers whose
// lanes are all-ones or all-zeros. Compress-store has no instruction
// either; it is emulated per register with a 16-entry permutation
// lookup keyed by the movemask nibble, followed by a length-limited
// masked store.

// avx2Vec models a ymm register pair.
type avx2Vec[T Element] struct {
	lo, hi [4]T
}

// avx2Mask models a pair of vpcmpq/vcmppd results: lane i is -1 when
// the predicate held and 0 otherwise.
type avx2Mask struct {
	lo, hi [4]int64
}

// avx2CompressPerm is the per-nibble lane permutation that packs the
// selected 64-bit lanes of one register to the front. Derived from the
// dword-index table fed to vpermd; unselected tail entries are don't
// cares.
var avx2CompressPerm = [16][4]uint8{
	{0, 1, 2, 3}, // 0000
	{0, 1, 2, 3}, // 0001
	{1, 1, 2, 3}, // 0010
	{0, 1, 2, 3}, // 0011
	{2, 1, 2, 3}, // 0100
	{0, 2, 2, 3}, // 0101
	{1, 2, 2, 3}, // 0110
	{0, 1, 2, 3}, // 0111
	{3, 1, 2, 3}, // 1000
	{0, 3, 2, 3}, // 1001
	{1, 3, 2, 3}, // 1010
	{0, 1, 3, 3}, // 1011
	{2, 3, 2, 3}, // 1100
	{0, 2, 3, 3}, // 1101
	{1, 2, 3, 3}, // 1110
	{0, 1, 2, 3}, // 1111
}

// avx2CmpGT models vpcmpgtq / vcmppd(GT) on one register.
func avx2CmpGT[T Element](a, b [4]T) [4]int64 {
	var m [4]int64
	for i := range m {
		if b[i] < a[i] {
			m[i] = -1
		}
	}
	return m
}

// avx2CmpGE models the NLT compare on one register.
func avx2CmpGE[T Element](a, b [4]T) [4]int64 {
	var m [4]int64
	for i := range m {
		if a[i] >= b[i] {
			m[i] = -1
		}
	}
	return m
}

// avx2Blend models vblendvpd: lane i is b[i] where m[i] is all-ones.
func avx2Blend[T Element](a, b [4]T, m [4]int64) [4]T {
	var v [4]T
	for i := range v {
		if m[i] != 0 {
			v[i] = b[i]
		} else {
			v[i] = a[i]
		}
	}
	return v
}

// avx2Movemask models vmovmskpd: the sign bit of each lane.
func avx2Movemask(m [4]int64) uint8 {
	var nib uint8
	for i, w := range m {
		if w < 0 {
			nib |= 1 << i
		}
	}
	return nib
}

// avx2Kernel realizes the capability set on the ymm-pair layout.
type avx2Kernel[T Element] struct{}

func (avx2Kernel[T]) Loadu(s []T) avx2Vec[T] {
	var v avx2Vec[T]
	copy(v.lo[:], s[:4])
	copy(v.hi[:], s[4:numLanes])
	return v
}

func (avx2Kernel[T]) Storeu(v avx2Vec[T], s []T) {
	copy(s[:4], v.lo[:])
	copy(s[4:numLanes], v.hi[:])
}

func (avx2Kernel[T]) MaskLoadu(s []T) avx2Vec[T] {
	k := avx2Kernel[T]{}
	v := k.Broadcast(maxValue[T]())
	n := min(len(s), numLanes)
	for i := 0; i < n; i++ {
		if i < 4 {
			v.lo[i] = s[i]
		} else {
			v.hi[i-4] = s[i]
		}
	}
	return v
}

// MaskStoreu models vpmaskmovq with the length-derived lane mask on
// each register.
func (avx2Kernel[T]) MaskStoreu(v avx2Vec[T], s []T) {
	n := min(len(s), numLanes)
	for i := 0; i < n; i++ {
		if i < 4 {
			s[i] = v.lo[i]
		} else {
			s[i] = v.hi[i-4]
		}
	}
}

// GatherFromIdx models vpgatherqq on each register.
func (avx2Kernel[T]) GatherFromIdx(idx [numLanes]int, s []T) avx2Vec[T] {
	var v avx2Vec[T]
	for i := 0; i < 4; i++ {
		v.lo[i] = s[idx[i]]
		v.hi[i] = s[idx[i+4]]
	}
	return v
}

func (avx2Kernel[T]) GetLane(v avx2Vec[T], i int) T {
	if i < 4 {
		return v.lo[i]
	}
	return v.hi[i-4]
}

func (avx2Kernel[T]) Broadcast(x T) avx2Vec[T] {
	return avx2Vec[T]{lo: [4]T{x, x, x, x}, hi: [4]T{x, x, x, x}}
}

// Min is the cmpgt/blend sequence: AVX2 has no 64-bit integer min.
func (avx2Kernel[T]) Min(a, b avx2Vec[T]) avx2Vec[T] {
	return avx2Vec[T]{
		lo: avx2Blend(a.lo, b.lo, avx2CmpGT(a.lo, b.lo)),
		hi: avx2Blend(a.hi, b.hi, avx2CmpGT(a.hi, b.hi)),
	}
}

func (avx2Kernel[T]) Max(a, b avx2Vec[T]) avx2Vec[T] {
	return avx2Vec[T]{
		lo: avx2Blend(b.lo, a.lo, avx2CmpGT(a.lo, b.lo)),
		hi: avx2Blend(b.hi, a.hi, avx2CmpGT(a.hi, b.hi)),
	}
}

func (avx2Kernel[T]) Ge(a, b avx2Vec[T]) avx2Mask {
	return avx2Mask{
		lo: avx2CmpGE(a.lo, b.lo),
		hi: avx2CmpGE(a.hi, b.hi),
	}
}

func (avx2Kernel[T]) ReduceMin(v avx2Vec[T]) T {
	r := v.lo[0]
	for i := 1; i < 4; i++ {
		r = minElem(r, v.lo[i])
	}
	for i := 0; i < 4; i++ {
		r = minElem(r, v.hi[i])
	}
	return r
}

func (avx2Kernel[T]) ReduceMax(v avx2Vec[T]) T {
	r := v.lo[0]
	for i := 1; i < 4; i++ {
		r = maxElem(r, v.lo[i])
	}
	for i := 0; i < 4; i++ {
		r = maxElem(r, v.hi[i])
	}
	return r
}

// Not models vpxor with all-ones on both mask registers.
func (avx2Kernel[T]) Not(m avx2Mask) avx2Mask {
	for i := range m.lo {
		m.lo[i] = ^m.lo[i]
		m.hi[i] = ^m.hi[i]
	}
	return m
}

func (avx2Kernel[T]) Popcount(m avx2Mask) int {
	return bits.OnesCount8(avx2Movemask(m.lo)) + bits.OnesCount8(avx2Movemask(m.hi))
}

// MaskCompressStoreu packs each register through the per-nibble
// permutation, then stores the packed prefix of the low register
// followed by the packed prefix of the high one.
func (avx2Kernel[T]) MaskCompressStoreu(s []T, m avx2Mask, v avx2Vec[T]) {
	j := 0
	for _, half := range [2]struct {
		nib uint8
		reg [4]T
	}{
		{avx2Movemask(m.lo), v.lo},
		{avx2Movemask(m.hi), v.hi},
	} {
		perm := avx2CompressPerm[half.nib]
		n := bits.OnesCount8(half.nib)
		for i := 0; i < n; i++ {
			s[j] = half.reg[perm[i]]
			j++
		}
	}
}

// Shuffle1111 is vshufpd with immediate 0b0101 on each register.
func (avx2Kernel[T]) Shuffle1111(v avx2Vec[T]) avx2Vec[T] {
	return avx2Vec[T]{
		lo: [4]T{v.lo[1], v.lo[0], v.lo[3], v.lo[2]},
		hi: [4]T{v.hi[1], v.hi[0], v.hi[3], v.hi[2]},
	}
}

// Reverse4 is vpermq 0x1B on each register.
func (avx2Kernel[T]) Reverse4(v avx2Vec[T]) avx2Vec[T] {
	return avx2Vec[T]{
		lo: [4]T{v.lo[3], v.lo[2], v.lo[1], v.lo[0]},
		hi: [4]T{v.hi[3], v.hi[2], v.hi[1], v.hi[0]},
	}
}

// Reverse8 is vpermq 0x1B on each register plus a register swap.
func (avx2Kernel[T]) Reverse8(v avx2Vec[T]) avx2Vec[T] {
	return avx2Vec[T]{
		lo: [4]T{v.hi[3], v.hi[2], v.hi[1], v.hi[0]},
		hi: [4]T{v.lo[3], v.lo[2], v.lo[1], v.lo[0]},
	}
}

// SwapPairs is vpermq 0x4E on each register.
func (avx2Kernel[T]) SwapPairs(v avx2Vec[T]) avx2Vec[T] {
	return avx2Vec[T]{
		lo: [4]T{v.lo[2], v.lo[3], v.lo[0], v.lo[1]},
		hi: [4]T{v.hi[2], v.hi[3], v.hi[0], v.hi[1]},
	}
}

// SwapHalves is a register swap.
func (avx2Kernel[T]) SwapHalves(v avx2Vec[T]) avx2Vec[T] {
	return avx2Vec[T]{lo: v.hi, hi: v.lo}
}

// BlendAA is vblendpd 0b1010 on each register.
func (avx2Kernel[T]) BlendAA(a, b avx2Vec[T]) avx2Vec[T] {
	return avx2Vec[T]{
		lo: [4]T{a.lo[0], b.lo[1], a.lo[2], b.lo[3]},
		hi: [4]T{a.hi[0], b.hi[1], a.hi[2], b.hi[3]},
	}
}

// BlendCC is vblendpd 0b1100 on each register.
func (avx2Kernel[T]) BlendCC(a, b avx2Vec[T]) avx2Vec[T] {
	return avx2Vec[T]{
		lo: [4]T{a.lo[0], a.lo[1], b.lo[2], b.lo[3]},
		hi: [4]T{a.hi[0], a.hi[1], b.hi[2], b.hi[3]},
	}
}

// BlendF0 keeps the low register of a and the high register of b.
func (avx2Kernel[T]) BlendF0(a, b avx2Vec[T]) avx2Vec[T] {
	return avx2Vec[T]{lo: a.lo, hi: b.hi}
}
