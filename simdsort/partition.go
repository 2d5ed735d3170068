package simdsort

// Vectorized two-way partition. The hot loop loads from whichever end
// of the array has fewer pending stores, classifies the vector against
// the pivot, and compress-stores the "below" lanes at the left write
// cursor and the "at or above" lanes at the right one. Both write
// regions stay behind the read cursors, so no load ever observes a
// partially written vector.

// partitionUnroll is the register count per iteration of the unrolled
// sweep.
const partitionUnroll = 8

// partitionVec classifies cur against pivotVec and scatters it to both
// sides of data: the lanes below the pivot pack to data[left:], the
// rest pack to data[right-k:] where k is their count. Running lane-wise
// extremes accumulate into minVec and maxVec. Returns k.
func partitionVec[T Element, V, M any, K Kernel[T, V, M]](data []T, left, right int, cur V, pivotVec V, minVec, maxVec *V) int {
	var k K
	geMask := k.Ge(cur, pivotVec)
	amountGE := k.Popcount(geMask)
	k.MaskCompressStoreu(data[left:], k.Not(geMask), cur)
	k.MaskCompressStoreu(data[right-amountGE:], geMask, cur)
	*minVec = k.Min(cur, *minVec)
	*maxVec = k.Max(cur, *maxVec)
	return amountGE
}

// partition reorders data so every element below pivot precedes every
// element at or above it, returning the count of elements below.
// smallest and biggest are updated to the running extremes over all of
// data.
func partition[T Element, V, M any, K Kernel[T, V, M]](data []T, pivot T, smallest, biggest *T) int {
	var k K
	left := 0
	right := len(data)

	// Scalar pre-pass shortening the range to a multiple of the lane
	// count.
	for i := (right - left) % numLanes; i > 0; i-- {
		*smallest = minElem(*smallest, data[left])
		*biggest = maxElem(*biggest, data[left])
		if !(data[left] < pivot) {
			right--
			data[left], data[right] = data[right], data[left]
		} else {
			left++
		}
	}

	if left == right {
		return left // fewer than numLanes elements
	}

	pivotVec := k.Broadcast(pivot)
	minVec := k.Broadcast(*smallest)
	maxVec := k.Broadcast(*biggest)

	if right-left == numLanes {
		v := k.Loadu(data[left:])
		amountGE := partitionVec[T, V, M, K](data, left, left+numLanes, v, pivotVec, &minVec, &maxVec)
		*smallest = k.ReduceMin(minVec)
		*biggest = k.ReduceMax(maxVec)
		return left + (numLanes - amountGE)
	}

	// Buffer one vector from each end; they are partitioned last, into
	// the final gap.
	vecLeft := k.Loadu(data[left:])
	vecRight := k.Loadu(data[right-numLanes:])
	lStore := left
	rStore := right - numLanes
	left += numLanes
	right -= numLanes
	for right-left != 0 {
		var cur V
		// Load from the side with fewer elements already stored, to
		// keep the write regions clear of the reads.
		if (rStore+numLanes)-right < left-lStore {
			right -= numLanes
			cur = k.Loadu(data[right:])
		} else {
			cur = k.Loadu(data[left:])
			left += numLanes
		}
		amountGE := partitionVec[T, V, M, K](data, lStore, rStore+numLanes, cur, pivotVec, &minVec, &maxVec)
		lStore += numLanes - amountGE
		rStore -= amountGE
	}

	amountGE := partitionVec[T, V, M, K](data, lStore, rStore+numLanes, vecLeft, pivotVec, &minVec, &maxVec)
	lStore += numLanes - amountGE
	amountGE = partitionVec[T, V, M, K](data, lStore, lStore+numLanes, vecRight, pivotVec, &minVec, &maxVec)
	lStore += numLanes - amountGE

	*smallest = k.ReduceMin(minVec)
	*biggest = k.ReduceMax(maxVec)
	return lStore
}

// partitionUnrolled is the wide variant: it keeps partitionUnroll
// buffer vectors per side and moves partitionUnroll registers per
// iteration. Falls back to the single-register sweep when the range is
// too short to keep both buffer sets disjoint.
func partitionUnrolled[T Element, V, M any, K Kernel[T, V, M]](data []T, pivot T, smallest, biggest *T) int {
	var k K
	left := 0
	right := len(data)
	if right-left <= 2*partitionUnroll*numLanes {
		return partition[T, V, M, K](data, pivot, smallest, biggest)
	}

	for i := (right - left) % (partitionUnroll * numLanes); i > 0; i-- {
		*smallest = minElem(*smallest, data[left])
		*biggest = maxElem(*biggest, data[left])
		if !(data[left] < pivot) {
			right--
			data[left], data[right] = data[right], data[left]
		} else {
			left++
		}
	}

	if left == right {
		return left
	}

	pivotVec := k.Broadcast(pivot)
	minVec := k.Broadcast(*smallest)
	maxVec := k.Broadcast(*biggest)

	var vecLeft, vecRight [partitionUnroll]V
	for i := 0; i < partitionUnroll; i++ {
		vecLeft[i] = k.Loadu(data[left+numLanes*i:])
		vecRight[i] = k.Loadu(data[right-numLanes*(partitionUnroll-i):])
	}

	lStore := left
	rStore := right - numLanes
	left += partitionUnroll * numLanes
	right -= partitionUnroll * numLanes
	for right-left != 0 {
		var cur [partitionUnroll]V
		if (rStore+numLanes)-right < left-lStore {
			right -= partitionUnroll * numLanes
			for i := range cur {
				cur[i] = k.Loadu(data[right+numLanes*i:])
			}
		} else {
			for i := range cur {
				cur[i] = k.Loadu(data[left+numLanes*i:])
			}
			left += partitionUnroll * numLanes
		}
		for i := range cur {
			amountGE := partitionVec[T, V, M, K](data, lStore, rStore+numLanes, cur[i], pivotVec, &minVec, &maxVec)
			lStore += numLanes - amountGE
			rStore -= amountGE
		}
	}

	for i := 0; i < partitionUnroll; i++ {
		amountGE := partitionVec[T, V, M, K](data, lStore, rStore+numLanes, vecLeft[i], pivotVec, &minVec, &maxVec)
		lStore += numLanes - amountGE
		rStore -= amountGE
	}
	for i := 0; i < partitionUnroll; i++ {
		amountGE := partitionVec[T, V, M, K](data, lStore, rStore+numLanes, vecRight[i], pivotVec, &minVec, &maxVec)
		lStore += numLanes - amountGE
		rStore -= amountGE
	}

	*smallest = k.ReduceMin(minVec)
	*biggest = k.ReduceMax(maxVec)
	return lStore
}
