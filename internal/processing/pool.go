// Package processing provides bounded fan-out over independent units of
// work. Callers collect results by index, so output order never depends on
// scheduling.
package processing

import (
	"runtime"
	"sync"
)

// ForEach runs fn(i) for every i in [0, n) across at most workers
// goroutines and blocks until all calls return. fn must write its result
// into caller-owned, index-addressed storage; no two invocations share an
// index, so no locking is needed on the caller side.
func ForEach(n, workers int, fn func(i int)) {
	if n <= 0 {
		return
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			fn(i)
		}(i)
	}
	wg.Wait()
}
