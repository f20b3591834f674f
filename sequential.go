package b64

import "fmt"

// encodedLen returns the exact symbol count for n input bytes:
// ceil(n/3)*4, padding included.
func encodedLen(n int) int { return (n + 2) / 3 * 4 }

// decodedLen returns the byte count produced by decoding src, which must
// already be length-validated (non-empty, multiple of 4). Trailing '='
// symbols shrink the final group from 3 bytes to 2 or 1.
func decodedLen[S ~string | ~[]byte](src S) int {
	n := len(src) / 4 * 3
	if src[len(src)-1] == padChar {
		n--
		if src[len(src)-2] == padChar {
			n--
		}
	}
	return n
}

// encodeRange encodes src into dst with no internal concurrency. dst must
// hold encodedLen(len(src)) bytes. The trailing partial group, if any, is
// padded with '=', so only the final chunk of a partitioned input may have
// a length that is not a multiple of 3.
func encodeRange(dst, src []byte) int {
	di, si := 0, 0
	n := len(src) / 3 * 3
	for si < n {
		v := uint(src[si])<<16 | uint(src[si+1])<<8 | uint(src[si+2])
		dst[di+0] = alphabet[v>>18&0x3F]
		dst[di+1] = alphabet[v>>12&0x3F]
		dst[di+2] = alphabet[v>>6&0x3F]
		dst[di+3] = alphabet[v&0x3F]
		si += 3
		di += 4
	}
	switch len(src) - n {
	case 1:
		v := uint(src[si]) << 16
		dst[di+0] = alphabet[v>>18&0x3F]
		dst[di+1] = alphabet[v>>12&0x3F]
		dst[di+2] = padChar
		dst[di+3] = padChar
		di += 4
	case 2:
		v := uint(src[si])<<16 | uint(src[si+1])<<8
		dst[di+0] = alphabet[v>>18&0x3F]
		dst[di+1] = alphabet[v>>12&0x3F]
		dst[di+2] = alphabet[v>>6&0x3F]
		dst[di+3] = padChar
		di += 4
	}
	return di
}

// decodeRange decodes src into dst, 4 symbols to 3 bytes per group.
// len(src) must be a multiple of 4; dst must hold decodedLen(src) bytes.
// Validation is strict and fails before any result is handed back:
// '=' is legal only as the last one or two symbols of the final group,
// and every other symbol must exist in the reverse table.
// It returns the number of bytes written to dst.
func decodeRange[S ~string | ~[]byte](dst []byte, src S) (int, error) {
	di := 0
	for g := 0; g < len(src); g += 4 {
		pads := 0
		if g+4 == len(src) {
			if src[g+3] == padChar {
				pads++
				if src[g+2] == padChar {
					pads++
				}
			}
		}
		var v uint
		for i := 0; i < 4-pads; i++ {
			c := src[g+i]
			if c == padChar {
				return 0, fmt.Errorf("%w: '=' at offset %d", ErrInvalidPadding, g+i)
			}
			b := reverse[c]
			if b == invalidSymbol {
				return 0, fmt.Errorf("%w: %q at offset %d", ErrInvalidCharacter, c, g+i)
			}
			v = v<<6 | uint(b)
		}
		v <<= 6 * pads
		dst[di] = byte(v >> 16)
		if pads < 2 {
			dst[di+1] = byte(v >> 8)
		}
		if pads == 0 {
			dst[di+2] = byte(v)
		}
		di += 3 - pads
	}
	return di, nil
}
