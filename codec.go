// Package b64 is a high-throughput standard Base64 codec. Small inputs
// take a plain sequential path; large inputs are split on group boundaries
// and encoded by one of two parallel strategies, selected automatically by
// input size. Arbitrarily large files stream through a bounded-memory
// transcoding path.
//
// The flat functions (Encode, Decode, ...) share one default engine, Std.
// Construct a Codec with New to tune the dispatch thresholds.
package b64

import (
	"fmt"
	"runtime"
)

// strategy is the closed set of execution plans the dispatcher chooses
// from. Selection is a pure function of input length and policy.
type strategy int

const (
	strategySequential strategy = iota
	strategyForkJoin
	strategyPipeline
)

// Codec is the engine: an immutable Policy snapshot plus the lazily
// started pipeline worker pool. One Codec is safe for concurrent use from
// any number of goroutines. Must not be copied after first use.
type Codec struct {
	policy Policy
	pipe   pipeline
}

// Std is the process-wide default engine behind the package-level
// functions, configured with DefaultPolicy.
var Std = New(DefaultPolicy())

// New returns a Codec governed by the given policy. The policy is
// snapshotted; later mutation of the caller's copy has no effect.
func New(policy Policy) *Codec {
	return &Codec{policy: policy, pipe: newPipeline()}
}

// selectStrategy implements the dispatch decision. It never encodes;
// it only picks the plan the input size justifies.
func (c *Codec) selectStrategy(n int) strategy {
	switch {
	case n < c.policy.MultithreadThreshold:
		return strategySequential
	case n >= c.policy.PipelineThreshold:
		return strategyPipeline
	default:
		return strategyForkJoin
	}
}

// threadsFor bounds the fork-join worker count by CPUs, policy cap, and
// chunk volume: a thread that would receive less than MinChunkSize of
// input costs more to schedule than it saves.
func (c *Codec) threadsFor(n int) int {
	threads := c.policy.threads()
	if byVolume := n / c.policy.MinChunkSize; threads > byVolume {
		threads = byVolume
	}
	if threads < 1 {
		threads = 1
	}
	return threads
}

func (c *Codec) guardSize(n int) error {
	if n > c.policy.MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, n, c.policy.MaxInputSize)
	}
	return nil
}

// EncodeBytes encodes data through the dispatcher-selected strategy and
// returns the Base64 symbols as a byte slice. The output buffer is sized
// exactly once, before any worker starts, and ownership passes to the
// caller on return.
func (c *Codec) EncodeBytes(data []byte) ([]byte, error) {
	if err := c.guardSize(len(data)); err != nil {
		return nil, err
	}
	dst := make([]byte, encodedLen(len(data)))
	switch c.selectStrategy(len(data)) {
	case strategySequential:
		encodeRange(dst, data)
	case strategyForkJoin:
		c.encodeForkJoin(dst, data, c.threadsFor(len(data)))
	case strategyPipeline:
		c.encodePipeline(dst, data)
	}
	return dst, nil
}

// Encode is EncodeBytes with a string result.
func (c *Codec) Encode(data []byte) (string, error) {
	dst, err := c.EncodeBytes(data)
	if err != nil {
		return "", err
	}
	return string(dst), nil
}

// EncodeAuto is the explicit dispatcher entry point. It is identical to
// Encode; the separate name exists for callers that want to state the
// auto-selection intent at the call site.
func (c *Codec) EncodeAuto(data []byte) (string, error) {
	return c.Encode(data)
}

// EncodeWithThreads forces the fork-join strategy with the given worker
// count, clamped to [1, 2*MaxThreads]. One thread, or input below
// MinChunkSize, degenerates to the sequential codec with no pool overhead.
func (c *Codec) EncodeWithThreads(data []byte, threads int) (string, error) {
	if err := c.guardSize(len(data)); err != nil {
		return "", err
	}
	if threads < 1 {
		threads = 1
	}
	if limit := 2 * c.policy.MaxThreads; threads > limit {
		threads = limit
	}
	dst := make([]byte, encodedLen(len(data)))
	if threads == 1 || len(data) < c.policy.MinChunkSize {
		encodeRange(dst, data)
	} else {
		c.encodeForkJoin(dst, data, threads)
	}
	return string(dst), nil
}

// EncodePipeline forces the worker-pool pipeline strategy regardless of
// input size. The pool is started on first use and shared by all calls on
// this Codec for the rest of the process lifetime.
func (c *Codec) EncodePipeline(data []byte) (string, error) {
	if err := c.guardSize(len(data)); err != nil {
		return "", err
	}
	dst := make([]byte, encodedLen(len(data)))
	c.encodePipeline(dst, data)
	return string(dst), nil
}

// Decode converts Base64 symbols back to bytes. Validation is strict and
// runs before any result is visible: the length must be a positive
// multiple of 4 (empty input decodes to empty output), '=' may appear only
// as the final one or two symbols, and everything else must be in the
// standard alphabet. On error the returned slice is always nil, never a
// partial decode.
func (c *Codec) Decode(s string) ([]byte, error) {
	if err := c.guardSize(len(s)); err != nil {
		return nil, err
	}
	if len(s) == 0 {
		return []byte{}, nil
	}
	if len(s)%4 != 0 {
		return nil, fmt.Errorf("%w: %d symbols", ErrInvalidLength, len(s))
	}
	dst := make([]byte, decodedLen(s))
	n, err := decodeRange(dst, s)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

// Info reports the engine's dispatch tunables and pipeline statistics.
func (c *Codec) Info() InfoSnapshot {
	return InfoSnapshot{
		AvailableCPUs:        runtime.NumCPU(),
		ConfiguredThreads:    c.policy.threads(),
		MultithreadThreshold: c.policy.MultithreadThreshold,
		MinChunkSize:         c.policy.MinChunkSize,
		MaxThreads:           c.policy.MaxThreads,
		MaxInputSize:         c.policy.MaxInputSize,
		PipelineThreshold:    c.policy.PipelineThreshold,
		PipelineJobs:         c.pipe.jobsDone(),
		Version:              VERSION,
	}
}

// Package-level convenience functions, all delegating to Std.

func Encode(data []byte) (string, error)      { return Std.Encode(data) }
func EncodeBytes(data []byte) ([]byte, error) { return Std.EncodeBytes(data) }
func EncodeAuto(data []byte) (string, error)  { return Std.EncodeAuto(data) }
func EncodeWithThreads(data []byte, threads int) (string, error) {
	return Std.EncodeWithThreads(data, threads)
}
func EncodePipeline(data []byte) (string, error) { return Std.EncodePipeline(data) }
func Decode(s string) ([]byte, error)            { return Std.Decode(s) }
func Info() InfoSnapshot                         { return Std.Info() }

// EncodeFileStreaming and DecodeFileStreaming package-level forms.

func EncodeFileStreaming(srcPath, dstPath string) (int64, error) {
	return Std.EncodeFileStreaming(srcPath, dstPath)
}
func DecodeFileStreaming(srcPath, dstPath string) (int64, error) {
	return Std.DecodeFileStreaming(srcPath, dstPath)
}
