package b64

import "github.com/sourcegraph/conc/pool"

// encodeForkJoin partitions src on 3-byte group boundaries and encodes the
// chunks on a bounded goroutine pool, one task per chunk. Output offsets
// are assigned before any task starts and are disjoint by construction, so
// tasks write straight into dst with no locks; Wait is the join barrier.
// The padded tail group lives in the last chunk, so concatenated chunk
// outputs are byte-identical to a sequential encode.
func (c *Codec) encodeForkJoin(dst, src []byte, threads int) {
	chunks := partitionEncode(len(src), threads, c.policy.MinChunkSize)
	if len(chunks) == 1 {
		encodeRange(dst, src)
		return
	}
	p := pool.New().WithMaxGoroutines(len(chunks))
	for _, ch := range chunks {
		p.Go(func() {
			encodeRange(
				dst[ch.outOff:ch.outOff+encodedLen(ch.inLen)],
				src[ch.inOff:ch.inOff+ch.inLen],
			)
		})
	}
	p.Wait()
}
