package b64

import "sync"

// STREAM_BUF_SIZE is the scratch block size for the streaming file codec.
// 1MB holds either one raw encode block (768KB, which encodes to exactly
// 1MB) or one symbol decode block, so both directions share one pool.
const STREAM_BUF_SIZE = 1 << 20

// streamBufPool reuses scratch blocks across streaming calls. This keeps
// peak memory at O(block size) per active call and avoids re-allocating
// megabyte buffers on every file. We pool *[]byte to keep the slice header
// off the heap.
var streamBufPool = sync.Pool{
	New: func() any {
		b := make([]byte, STREAM_BUF_SIZE)
		return &b
	},
}
