package aesgo

import "sync"

// blocks handled per goroutine below which
// mapBlocks does not bother spawning workers
const minBlocksPerWorker = 64

// mapBlocks applies fn to every block of src and stores the result at the
// same position in dst. The blocks are split into contiguous ranges, one per
// worker, so the output order never depends on scheduling.
func mapBlocks(dst, src []byte, workers int, fn func(state) state) {
	n := len(src) / BlockSize
	if limit := n / minBlocksPerWorker; workers > limit {
		workers = limit
	}
	if workers <= 1 {
		transformRange(dst, src, 0, n, fn)
		return
	}

	stride := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < n; start += stride {
		end := start + stride
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			transformRange(dst, src, start, end, fn)
		}(start, end)
	}
	wg.Wait()
}

func transformRange(dst, src []byte, start, end int, fn func(state) state) {
	for i := start; i < end; i++ {
		off := i * BlockSize
		s := fn(bytesToState(src[off:]))
		stateToBytes(dst[off:], &s)
	}
}
