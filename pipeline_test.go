package b64

import (
	stdb64 "encoding/base64"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipelineConcurrentCallers(t *testing.T) {
	// The pool is shared process-wide state; items from concurrent calls
	// interleave on one queue. Every caller must still get exactly its
	// own output.
	codec := New(DefaultPolicy())

	const callers = 8
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			data := randomBytes(500_000+i*3331, int64(i))
			want := stdb64.StdEncoding.EncodeToString(data)
			got, err := codec.EncodePipeline(data)
			if err != nil {
				errs[i] = err
				return
			}
			if got != want {
				t.Errorf("caller %d: pipeline output diverged from sequential", i)
			}
		}(i)
	}
	wg.Wait()
	for i, err := range errs {
		require.NoError(t, err, "caller %d", i)
	}
}

func TestPipelineJobCounter(t *testing.T) {
	codec := New(DefaultPolicy())
	assert.Zero(t, codec.Info().PipelineJobs, "counter starts at zero before first use")

	// 4 items of MinChunkSize plus a short tail.
	data := randomBytes(4*MIN_CHUNK_SIZE+5, 1)
	_, err := codec.EncodePipeline(data)
	require.NoError(t, err)
	assert.EqualValues(t, 5, codec.Info().PipelineJobs)

	_, err = codec.EncodePipeline(data)
	require.NoError(t, err)
	assert.EqualValues(t, 10, codec.Info().PipelineJobs, "counter is cumulative across calls")
}

func TestInfoConcurrentWithFirstPipelineUse(t *testing.T) {
	// Info reads the pool's job counter without passing through the
	// pool's once-guarded start, so it must be safe to poll while
	// another goroutine triggers that first start.
	codec := New(DefaultPolicy())

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				_ = codec.Info().PipelineJobs
			}
		}
	}()

	data := randomBytes(2*MIN_CHUNK_SIZE, 5)
	got, err := codec.EncodePipeline(data)
	require.NoError(t, err)
	assert.Equal(t, stdb64.StdEncoding.EncodeToString(data), got)

	close(stop)
	wg.Wait()
	assert.Positive(t, codec.Info().PipelineJobs)
}

func TestPipelineItemAlignment(t *testing.T) {
	// Inputs that are not multiples of the item size exercise the short
	// final item and its padding.
	codec := New(DefaultPolicy())
	for _, size := range []int{MIN_CHUNK_SIZE - 1, MIN_CHUNK_SIZE, MIN_CHUNK_SIZE + 1, 3*MIN_CHUNK_SIZE + 2} {
		data := randomBytes(size, int64(size))
		got, err := codec.EncodePipeline(data)
		require.NoError(t, err)
		assert.Equal(t, stdb64.StdEncoding.EncodeToString(data), got, "size=%d", size)
	}
}
