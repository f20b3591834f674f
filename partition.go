package b64

// chunk describes one worker's slice of a partitioned call. Input and
// output offsets are computed before any concurrent work starts, so
// workers write disjoint ranges without locks.
type chunk struct {
	inOff  int
	inLen  int
	outOff int
}

// partitionEncode splits n input bytes into at most k chunks. Every chunk
// length is a multiple of 3 except the last, which absorbs the remainder
// (the padded tail group must stay with the final chunk). k is reduced
// until each chunk carries at least minChunk bytes, so forking is never
// cheaper than the work being forked. O(1) per chunk.
func partitionEncode(n, k, minChunk int) []chunk {
	if minChunk < 3 {
		minChunk = 3
	}
	if max := n / minChunk; k > max {
		k = max
	}
	if k < 1 {
		k = 1
	}
	size := Aligndown(n/k, 3)
	if size == 0 {
		k = 1
	}
	chunks := make([]chunk, k)
	off := 0
	for i := range chunks {
		ln := size
		if i == k-1 {
			ln = n - off
		}
		chunks[i] = chunk{inOff: off, inLen: ln, outOff: off / 3 * 4}
		off += ln
	}
	return chunks
}
