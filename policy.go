package b64

import "runtime"

const VERSION = "1.2.0"

// Default tunables. The thresholds were tuned empirically on commodity
// 8-core hardware; the crossover points shift with core count and cache
// size, which is why Policy exposes every one of them.
const (
	// MULTITHREAD_THRESHOLD is the input size above which parallel
	// encoding pays for its coordination overhead.
	MULTITHREAD_THRESHOLD = 1 << 20 // 1MB

	// MIN_CHUNK_SIZE bounds how finely the parallel strategies slice
	// input. Chunks below this churn on scheduling instead of encoding.
	MIN_CHUNK_SIZE = 64 << 10 // 64KB

	// MAX_THREADS caps encode workers regardless of available CPUs.
	MAX_THREADS = 8

	// MAX_INPUT_SIZE rejects OOM-scale inputs before any dispatch
	// decision. The streaming file codec is the intended path for
	// anything larger.
	MAX_INPUT_SIZE = 100 << 20 // 100MB

	// PIPELINE_THRESHOLD is the input size at which the long-lived
	// worker pool overtakes per-call fork-join.
	PIPELINE_THRESHOLD = 32 << 20 // 32MB
)

// Policy is the dispatch configuration: read-only after construction and
// shared by every call on the owning Codec, so it is always safe to read
// concurrently. Zero or negative fields are not defaulted; build custom
// policies on top of DefaultPolicy.
type Policy struct {
	// MultithreadThreshold selects Sequential below, parallel at or above.
	MultithreadThreshold int
	// MinChunkSize is the smallest input range handed to one worker.
	MinChunkSize int
	// MaxThreads caps worker counts for both parallel strategies.
	MaxThreads int
	// MaxInputSize is the hard admission guard for in-memory calls.
	MaxInputSize int
	// PipelineThreshold selects the worker-pool pipeline at or above.
	PipelineThreshold int
}

// DefaultPolicy returns the tuned defaults.
func DefaultPolicy() Policy {
	return Policy{
		MultithreadThreshold: MULTITHREAD_THRESHOLD,
		MinChunkSize:         MIN_CHUNK_SIZE,
		MaxThreads:           MAX_THREADS,
		MaxInputSize:         MAX_INPUT_SIZE,
		PipelineThreshold:    PIPELINE_THRESHOLD,
	}
}

// threads resolves the worker count the policy allows on this machine.
func (p Policy) threads() int {
	n := runtime.NumCPU()
	if n > p.MaxThreads {
		n = p.MaxThreads
	}
	if n < 1 {
		n = 1
	}
	return n
}

// InfoSnapshot reports the dispatch tunables plus pool statistics, for
// benchmarking and tuning harnesses.
type InfoSnapshot struct {
	AvailableCPUs        int
	ConfiguredThreads    int
	MultithreadThreshold int
	MinChunkSize         int
	MaxThreads           int
	MaxInputSize         int
	PipelineThreshold    int
	// PipelineJobs is the cumulative number of work items the pipeline
	// pool has encoded since process start.
	PipelineJobs int64
	Version      string
}
