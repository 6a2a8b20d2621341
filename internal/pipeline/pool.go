package pipeline

import (
	"runtime"
	"sync"

	"github.com/oxhq/tractor/internal/langs"
)

// RunFiles processes each path's pipeline on its own worker, each file's
// own stages strictly sequential within that worker (spec §5). Grounded on
// core/filewalker.go's channel + sync.WaitGroup fan-out, trimmed of
// directory scanning (file discovery is out of scope — spec.md lists
// globbing as an external collaborator; cmd/tractor hands RunFiles an
// already-expanded path list).
//
// Results are returned in the same order as paths, not completion order,
// so callers can print them deterministically (spec §5: "files appear in
// the order the user supplied").
func RunFiles(reg *langs.Registry, paths []string, opts Options) []Result {
	results := make([]Result, len(paths))
	jobs := make(chan int, len(paths))
	for i := range paths {
		jobs <- i
	}
	close(jobs)

	workers := runtime.NumCPU()
	if workers > len(paths) {
		workers = len(paths)
	}
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = RunFile(reg, paths[i], opts)
			}
		}()
	}
	wg.Wait()
	return results
}

// ExitCode is the process exit code for a batch run: the maximum of every
// file's own exit code (spec §5's exit-code accumulator rule).
func ExitCode(results []Result) int {
	max := ExitOK
	for _, r := range results {
		if r.Exit > max {
			max = r.Exit
		}
	}
	return max
}
