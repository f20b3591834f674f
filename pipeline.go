package b64

import (
	"sync"

	"github.com/puzpuzpuz/xsync/v4"
)

// pipelineItem is one fixed-size, group-aligned unit of encode work.
// src and dst are pre-sliced to disjoint ranges, so a worker needs no
// coordination beyond signaling completion. Items from concurrent calls
// interleave freely on the queue; each call waits only on its own group.
type pipelineItem struct {
	src  []byte
	dst  []byte
	done *sync.WaitGroup
}

// pipeline is the worker-pool strategy state: a fixed set of long-lived
// workers behind a bounded queue. Workers start once, on first use, and
// run for the remainder of the process, amortizing spawn cost across
// calls in exchange for queue coordination cost. The job counter is
// created eagerly with the Codec: Info may read it at any time, including
// while another goroutine is inside the first start.
type pipeline struct {
	once  sync.Once
	queue chan pipelineItem
	jobs  *xsync.Counter
}

func newPipeline() pipeline {
	return pipeline{jobs: xsync.NewCounter()}
}

func (p *pipeline) start(workers int) {
	p.once.Do(func() {
		p.queue = make(chan pipelineItem, 2*workers)
		for i := 0; i < workers; i++ {
			go p.work()
		}
	})
}

func (p *pipeline) work() {
	for item := range p.queue {
		encodeRange(item.dst, item.src)
		p.jobs.Inc()
		item.done.Done()
	}
}

// jobsDone reports the cumulative item count; zero before first use.
func (p *pipeline) jobsDone() int64 {
	return p.jobs.Value()
}

// encodePipeline streams src through the shared pool. The calling
// goroutine is the producer: it walks the input emitting 3-aligned items
// sized near MinChunkSize, each tagged with its destination range, then
// blocks on the completion barrier. Ordering needs no assembler pass
// because output offsets are fixed before the items are enqueued.
func (c *Codec) encodePipeline(dst, src []byte) {
	c.pipe.start(c.policy.threads())
	itemSize := Aligndown(c.policy.MinChunkSize, 3)
	if itemSize < 3 {
		itemSize = 3
	}
	var done sync.WaitGroup
	for off := 0; off < len(src); off += itemSize {
		end := off + itemSize
		if end > len(src) {
			end = len(src)
		}
		outOff := off / 3 * 4
		done.Add(1)
		c.pipe.queue <- pipelineItem{
			src:  src[off:end],
			dst:  dst[outOff : outOff+encodedLen(end-off)],
			done: &done,
		}
	}
	done.Wait()
}
