package uifx

// BuildIndices appends a triangle index stream covering blocks consecutive
// vertex blocks of blockSize vertices each, reusing one block's topology for
// every block. The result is appended to dst[:0].
//
// A nil topology means each block is a plain triangle list, so block b is
// indexed b*blockSize .. (b+1)*blockSize-1 in order.
func BuildIndices(dst []uint32, topology []uint32, blockSize, blocks int) []uint32 {
	dst = dst[:0]
	if blockSize <= 0 || blocks <= 0 {
		return dst
	}

	per := len(topology)
	if topology == nil {
		per = blockSize
	}
	if need := per * blocks; cap(dst) < need {
		dst = make([]uint32, 0, need)
	}

	for b := 0; b < blocks; b++ {
		offset := uint32(b * blockSize) //nolint:gosec // vertex counts fit in uint32 index buffers
		if topology == nil {
			for i := 0; i < blockSize; i++ {
				dst = append(dst, offset+uint32(i)) //nolint:gosec // bounded by blockSize
			}
			continue
		}
		for _, idx := range topology {
			dst = append(dst, offset+idx)
		}
	}
	return dst
}

// TriangleListIndices returns the identity index stream for a triangle list
// of n vertices.
func TriangleListIndices(n int) []uint32 {
	return BuildIndices(nil, nil, n, 1)
}
