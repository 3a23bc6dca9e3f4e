package verify

import (
	"fmt"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
)

// Config controls a verification run.
type Config struct {
	NumWorkers int  // 0 = NumCPU
	Verbose    bool // print one line per property
}

// Run executes the full property battery across a worker pool and returns
// every failure found, ordered by property name.
func Run(cfg Config) []Failure {
	if cfg.NumWorkers <= 0 {
		cfg.NumWorkers = runtime.NumCPU()
	}

	props := Properties()
	ch := make(chan Property, len(props))
	for _, p := range props {
		ch <- p
	}
	close(ch)

	var (
		mu       sync.Mutex
		failures []Failure
		checked  atomic.Int64
		wg       sync.WaitGroup
	)
	for i := 0; i < cfg.NumWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range ch {
				f := p.Check()
				checked.Add(1)
				if f != nil {
					f.Property = p.Name
					mu.Lock()
					failures = append(failures, *f)
					mu.Unlock()
				}
				if cfg.Verbose {
					status := "ok"
					if f != nil {
						status = "FAIL"
					}
					fmt.Printf("  %-24s %s\n", p.Name, status)
				}
			}
		}()
	}
	wg.Wait()

	sort.Slice(failures, func(i, j int) bool {
		return failures[i].Property < failures[j].Property
	})
	return failures
}
