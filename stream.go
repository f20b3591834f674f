package b64

import (
	"fmt"
	"io"
	"os"
)

const (
	// STREAM_ENCODE_BLOCK is the raw-byte block size for streaming
	// encode. A multiple of 3, so no byte group straddles two blocks and
	// padding can only ever appear on the final, short block.
	STREAM_ENCODE_BLOCK = 768 << 10

	// STREAM_DECODE_BLOCK is the symbol block size for streaming decode.
	// A multiple of 4 and deliberately not 3-aligned: decode blocks are
	// cut by the symbol stream, where the unit is the 4-symbol group.
	STREAM_DECODE_BLOCK = 1 << 20
)

// EncodeFileStreaming transcodes the file at srcPath into Base64 at
// dstPath in bounded-memory blocks, and returns the total number of bytes
// consumed from the source (not the output size), so callers can verify
// full-file coverage. Blocks large enough to clear the multithread
// threshold go through the fork-join strategy; the rest take the
// sequential codec. If the call fails partway, a prefix may already be in
// the destination and must be discarded.
func (c *Codec) EncodeFileStreaming(srcPath, dstPath string) (int64, error) {
	in, err := os.Open(srcPath)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer in.Close()
	out, err := os.Create(dstPath)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer out.Close()

	raw := streamBufPool.Get().(*[]byte)
	enc := streamBufPool.Get().(*[]byte)
	defer streamBufPool.Put(raw)
	defer streamBufPool.Put(enc)

	var consumed int64
	for {
		n, rerr := io.ReadFull(in, (*raw)[:STREAM_ENCODE_BLOCK])
		if n > 0 {
			dst := (*enc)[:encodedLen(n)]
			if n >= c.policy.MultithreadThreshold {
				c.encodeForkJoin(dst, (*raw)[:n], c.threadsFor(n))
			} else {
				encodeRange(dst, (*raw)[:n])
			}
			if _, werr := out.Write(dst); werr != nil {
				return consumed, fmt.Errorf("%w: %v", ErrIO, werr)
			}
			consumed += int64(n)
		}
		if rerr == io.EOF || rerr == io.ErrUnexpectedEOF {
			break
		}
		if rerr != nil {
			return consumed, fmt.Errorf("%w: %v", ErrIO, rerr)
		}
	}
	if err := out.Close(); err != nil {
		return consumed, fmt.Errorf("%w: %v", ErrIO, err)
	}
	return consumed, nil
}

// DecodeFileStreaming is the symmetric path: it reads 4-aligned symbol
// blocks from srcPath, decodes each through the sequential codec, and
// appends the bytes to dstPath. Returns the number of symbol bytes
// consumed from the source. Validation matches Decode, extended across
// block boundaries: a padded group anywhere but the very end of the file
// is rejected.
func (c *Codec) DecodeFileStreaming(srcPath, dstPath string) (int64, error) {
	in, err := os.Open(srcPath)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer in.Close()
	out, err := os.Create(dstPath)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer out.Close()

	sym := streamBufPool.Get().(*[]byte)
	dec := streamBufPool.Get().(*[]byte)
	defer streamBufPool.Put(sym)
	defer streamBufPool.Put(dec)

	var consumed int64
	padded := false
	for {
		n, rerr := io.ReadFull(in, (*sym)[:STREAM_DECODE_BLOCK])
		if n > 0 {
			if padded {
				return consumed, fmt.Errorf("%w: data after final padded group", ErrInvalidPadding)
			}
			if n%4 != 0 {
				return consumed, fmt.Errorf("%w: %d trailing symbols", ErrInvalidLength, n)
			}
			m, derr := decodeRange((*dec)[:n/4*3], (*sym)[:n])
			if derr != nil {
				return consumed, derr
			}
			// A short group means this block ended in padding; the file
			// must end with it.
			padded = m < n/4*3
			if _, werr := out.Write((*dec)[:m]); werr != nil {
				return consumed, fmt.Errorf("%w: %v", ErrIO, werr)
			}
			consumed += int64(n)
		}
		if rerr == io.EOF || rerr == io.ErrUnexpectedEOF {
			break
		}
		if rerr != nil {
			return consumed, fmt.Errorf("%w: %v", ErrIO, rerr)
		}
	}
	if err := out.Close(); err != nil {
		return consumed, fmt.Errorf("%w: %v", ErrIO, err)
	}
	return consumed, nil
}
