// benchmark.go
// Resource usage report for any wrapped mimic command.
// Measures execution time and memory usage of the wrapped function.

package benchmark

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"
)

const mb = 1024.0 * 1024.0

// Run calls f and writes its runtime and memory usage to w.
// The report is written even when f fails; f's error is returned.
func Run(w io.Writer, label string, f func() error) error {
	fmt.Fprintf(w, "[Benchmark] Running: %s\n", label)

	// Snapshot environment info
	fmt.Fprintln(w, "[Benchmark] Timestamp:", time.Now().Format(time.RFC1123))
	if host, err := os.Hostname(); err == nil {
		fmt.Fprintln(w, "[Benchmark] Hostname:", host)
	}
	fmt.Fprintln(w, "[Benchmark] Go Version:", runtime.Version())
	fmt.Fprintf(w, "[Benchmark] OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)

	runtime.GC()
	var memStart, memEnd runtime.MemStats
	runtime.ReadMemStats(&memStart)
	start := time.Now()

	err := f()

	elapsed := time.Since(start)
	runtime.ReadMemStats(&memEnd)

	fmt.Fprintf(w, "[Benchmark] Time Elapsed: %v\n", elapsed)
	fmt.Fprintf(w, "[Benchmark] Total Allocated: %.2f MB\n", float64(memEnd.TotalAlloc-memStart.TotalAlloc)/mb)
	fmt.Fprintf(w, "[Benchmark] Heap In Use: %.2f MB\n", float64(memEnd.HeapAlloc)/mb)
	fmt.Fprintf(w, "[Benchmark] Mallocs: %d\n", memEnd.Mallocs-memStart.Mallocs)
	fmt.Fprintf(w, "[Benchmark] GC Cycles: %d\n", memEnd.NumGC-memStart.NumGC)
	fmt.Fprintf(w, "[Benchmark] CPU Cores: %d\n", runtime.NumCPU())
	if err != nil {
		fmt.Fprintf(w, "[Benchmark] Failed: %v\n", err)
	}
	fmt.Fprintln(w, "[Benchmark] ----------------------------------------")
	return err
}
