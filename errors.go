package b64

import "errors"

var (
	// ErrInputTooLarge indicates an encode or decode input larger than the
	// policy's MaxInputSize. The guard runs before any strategy is selected
	// or any output memory is committed.
	ErrInputTooLarge = errors.New("b64: input too large")

	// ErrInvalidLength indicates a decode input whose length is not a
	// positive multiple of 4 symbols.
	ErrInvalidLength = errors.New("b64: invalid length, not a multiple of 4")

	// ErrInvalidPadding indicates a '=' outside the last one or two
	// positions of the final group, or symbols following a padded group.
	ErrInvalidPadding = errors.New("b64: invalid padding")

	// ErrInvalidCharacter indicates a non-padding symbol outside the
	// standard Base64 alphabet.
	ErrInvalidCharacter = errors.New("b64: invalid character")

	// ErrIO wraps any filesystem failure from the streaming file codec.
	// A streaming call that fails may have already written a prefix of the
	// destination; that partial output must be discarded.
	ErrIO = errors.New("b64: file i/o failed")
)
