package simdsort

// The portable back-end is the reference realization: an abstract
// eight-lane vector and a boolean-per-lane mask, with every operation
// written as a plain loop. The other back-ends must be observationally
// identical to this one.

// portableVec is an abstract eight-lane vector.
type portableVec[T Element] [numLanes]T

// portableMask holds one boolean per lane.
type portableMask [numLanes]bool

type portableKernel[T Element] struct{}

func (portableKernel[T]) Loadu(s []T) portableVec[T] {
	var v portableVec[T]
	copy(v[:], s[:numLanes])
	return v
}

func (portableKernel[T]) Storeu(v portableVec[T], s []T) {
	copy(s[:numLanes], v[:])
}

func (portableKernel[T]) MaskLoadu(s []T) portableVec[T] {
	sentinel := maxValue[T]()
	var v portableVec[T]
	for i := range v {
		v[i] = sentinel
	}
	n := min(len(s), numLanes)
	copy(v[:n], s[:n])
	return v
}

func (portableKernel[T]) MaskStoreu(v portableVec[T], s []T) {
	n := min(len(s), numLanes)
	copy(s[:n], v[:n])
}

func (portableKernel[T]) GatherFromIdx(idx [numLanes]int, s []T) portableVec[T] {
	var v portableVec[T]
	for i, j := range idx {
		v[i] = s[j]
	}
	return v
}

func (portableKernel[T]) GetLane(v portableVec[T], i int) T {
	return v[i]
}

func (portableKernel[T]) Broadcast(x T) portableVec[T] {
	var v portableVec[T]
	for i := range v {
		v[i] = x
	}
	return v
}

func (portableKernel[T]) Min(a, b portableVec[T]) portableVec[T] {
	var v portableVec[T]
	for i := range v {
		v[i] = minElem(a[i], b[i])
	}
	return v
}

func (portableKernel[T]) Max(a, b portableVec[T]) portableVec[T] {
	var v portableVec[T]
	for i := range v {
		v[i] = maxElem(a[i], b[i])
	}
	return v
}

func (portableKernel[T]) Ge(a, b portableVec[T]) portableMask {
	var m portableMask
	for i := range m {
		m[i] = a[i] >= b[i]
	}
	return m
}

func (portableKernel[T]) ReduceMin(v portableVec[T]) T {
	r := v[0]
	for _, x := range v[1:] {
		r = minElem(r, x)
	}
	return r
}

func (portableKernel[T]) ReduceMax(v portableVec[T]) T {
	r := v[0]
	for _, x := range v[1:] {
		r = maxElem(r, x)
	}
	return r
}

func (portableKernel[T]) Not(m portableMask) portableMask {
	for i := range m {
		m[i] = !m[i]
	}
	return m
}

func (portableKernel[T]) Popcount(m portableMask) int {
	n := 0
	for _, b := range m {
		if b {
			n++
		}
	}
	return n
}

func (portableKernel[T]) MaskCompressStoreu(s []T, m portableMask, v portableVec[T]) {
	j := 0
	for i, keep := range m {
		if keep {
			s[j] = v[i]
			j++
		}
	}
}

func (portableKernel[T]) Shuffle1111(v portableVec[T]) portableVec[T] {
	return portableVec[T]{v[1], v[0], v[3], v[2], v[5], v[4], v[7], v[6]}
}

func (portableKernel[T]) Reverse4(v portableVec[T]) portableVec[T] {
	return portableVec[T]{v[3], v[2], v[1], v[0], v[7], v[6], v[5], v[4]}
}

func (portableKernel[T]) Reverse8(v portableVec[T]) portableVec[T] {
	return portableVec[T]{v[7], v[6], v[5], v[4], v[3], v[2], v[1], v[0]}
}

func (portableKernel[T]) SwapPairs(v portableVec[T]) portableVec[T] {
	return portableVec[T]{v[2], v[3], v[0], v[1], v[6], v[7], v[4], v[5]}
}

func (portableKernel[T]) SwapHalves(v portableVec[T]) portableVec[T] {
	return portableVec[T]{v[4], v[5], v[6], v[7], v[0], v[1], v[2], v[3]}
}

func (portableKernel[T]) BlendAA(a, b portableVec[T]) portableVec[T] {
	return portableVec[T]{a[0], b[1], a[2], b[3], a[4], b[5], a[6], b[7]}
}

func (portableKernel[T]) BlendCC(a, b portableVec[T]) portableVec[T] {
	return portableVec[T]{a[0], a[1], b[2], b[3], a[4], a[5], b[6], b[7]}
}

func (portableKernel[T]) BlendF0(a, b portableVec[T]) portableVec[T] {
	return portableVec[T]{a[0], a[1], a[2], a[3], b[4], b[5], b[6], b[7]}
}
