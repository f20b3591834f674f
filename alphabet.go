package b64

// alphabet is the standard Base64 symbol set (RFC 4648 §4). Every encode
// path in this package goes through these 64 symbols plus '=' padding, so
// output round-trips with any conforming Base64 implementation.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

const padChar = '='

// invalidSymbol marks bytes outside the alphabet in the reverse table.
// 0xFF is safe as a sentinel: valid 6-bit values are 0..63.
const invalidSymbol = 0xFF

// reverse maps a symbol byte back to its 6-bit value. Built once at
// package init; read-only afterwards, so concurrent decoders share it
// without synchronization.
var reverse = func() (t [256]byte) {
	for i := range t {
		t[i] = invalidSymbol
	}
	for i := 0; i < len(alphabet); i++ {
		t[alphabet[i]] = byte(i)
	}
	return
}()
