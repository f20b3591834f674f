package b64

import (
	stdb64 "encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamingRoundTrip(t *testing.T) {
	// 3_000_001 bytes: several full encode blocks plus a short, padded
	// final block.
	data := randomBytes(3_000_001, 99)
	dir := t.TempDir()
	raw := filepath.Join(dir, "input.bin")
	encoded := filepath.Join(dir, "encoded.b64")
	decoded := filepath.Join(dir, "decoded.bin")
	require.NoError(t, os.WriteFile(raw, data, 0o644))

	consumed, err := EncodeFileStreaming(raw, encoded)
	require.NoError(t, err)
	assert.EqualValues(t, len(data), consumed, "encode must consume the whole source")

	encodedData, err := os.ReadFile(encoded)
	require.NoError(t, err)
	assert.Equal(t, stdb64.StdEncoding.EncodeToString(data), string(encodedData))

	consumed, err = DecodeFileStreaming(encoded, decoded)
	require.NoError(t, err)
	assert.EqualValues(t, len(encodedData), consumed)

	decodedData, err := os.ReadFile(decoded)
	require.NoError(t, err)
	assert.Equal(t, data, decodedData)
}

func TestStreamingEmptyFile(t *testing.T) {
	dir := t.TempDir()
	raw := filepath.Join(dir, "empty.bin")
	encoded := filepath.Join(dir, "empty.b64")
	require.NoError(t, os.WriteFile(raw, nil, 0o644))

	consumed, err := EncodeFileStreaming(raw, encoded)
	require.NoError(t, err)
	assert.Zero(t, consumed)

	out, err := os.ReadFile(encoded)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestStreamingDecodeRejectsCorruptInput(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "out.bin")

	writeInput := func(content string) string {
		p := filepath.Join(dir, "in.b64")
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
		return p
	}

	t.Run("TruncatedGroup", func(t *testing.T) {
		_, err := DecodeFileStreaming(writeInput("ABCDE"), dst)
		assert.ErrorIs(t, err, ErrInvalidLength)
	})

	t.Run("PaddingMidFile", func(t *testing.T) {
		_, err := DecodeFileStreaming(writeInput("QQ==AAAA"), dst)
		assert.ErrorIs(t, err, ErrInvalidPadding)
	})

	t.Run("PaddingAtBlockBoundary", func(t *testing.T) {
		// The padded group lands exactly at the end of the first decode
		// block; the symbols after it are only seen one block later.
		head := strings.Repeat("AAAA", (STREAM_DECODE_BLOCK-4)/4) + "QQ=="
		_, err := DecodeFileStreaming(writeInput(head+"AAAA"), dst)
		assert.ErrorIs(t, err, ErrInvalidPadding)
	})

	t.Run("CharacterOutsideAlphabet", func(t *testing.T) {
		_, err := DecodeFileStreaming(writeInput("QUJD?A=="), dst)
		assert.ErrorIs(t, err, ErrInvalidCharacter)
	})
}

func TestStreamingIOFailures(t *testing.T) {
	dir := t.TempDir()

	t.Run("MissingSource", func(t *testing.T) {
		_, err := EncodeFileStreaming(filepath.Join(dir, "does-not-exist"), filepath.Join(dir, "out"))
		assert.ErrorIs(t, err, ErrIO)
	})

	t.Run("UnwritableDestination", func(t *testing.T) {
		src := filepath.Join(dir, "in.bin")
		require.NoError(t, os.WriteFile(src, []byte("abc"), 0o644))
		_, err := EncodeFileStreaming(src, filepath.Join(dir, "missing-dir", "out"))
		assert.ErrorIs(t, err, ErrIO)
	})
}
