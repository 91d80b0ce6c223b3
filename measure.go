package main

import (
	"runtime"
	"time"
)

// measurement records the cost of computing one report.
type measurement struct {
	Duration   time.Duration
	AllocBytes uint64
}

var readMemStats = runtime.ReadMemStats

// measureSummary runs fn and reports how long it took and how many bytes
// it allocated on the heap.
func measureSummary(fn func() Summary) (Summary, measurement) {
	var before, after runtime.MemStats
	readMemStats(&before)
	start := time.Now()
	s := fn()
	elapsed := time.Since(start)
	readMemStats(&after)

	var alloc uint64
	if after.TotalAlloc > before.TotalAlloc {
		alloc = after.TotalAlloc - before.TotalAlloc
	}
	return s, measurement{Duration: elapsed, AllocBytes: alloc}
}
