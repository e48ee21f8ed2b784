package main

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

// maxAutoWorkers caps the automatic worker count.
const maxAutoWorkers = 8

// BuildResult holds the outcome of a single document build.
type BuildResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// buildBatch builds jobs concurrently. Results keep the order of jobs.
func buildBatch(ctx context.Context, workers int, jobs []buildJob, params *buildParams) []BuildResult {
	if len(jobs) == 0 {
		return nil
	}

	concurrency := min(max(workers, 1), len(jobs))

	results := make([]BuildResult, len(jobs))
	var wg sync.WaitGroup
	queue := make(chan int, len(jobs))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range queue {
				if ctx.Err() != nil {
					results[idx] = BuildResult{
						InputPath: jobs[idx].Input,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = buildOne(ctx, jobs[idx], params)
			}
		}()
	}

	for i := range jobs {
		queue <- i
	}
	close(queue)

	wg.Wait()
	return results
}

// outputClaims records which input owns each output path of a build, so two
// jobs never write the same file. The zero value is ready to use.
type outputClaims struct {
	mu    sync.Mutex
	owner map[string]string // cleaned output path -> input
}

// claim reserves path for input. It fails with ErrOutputConflict when
// another input already holds it.
func (c *outputClaims) claim(path, input string) error {
	key := filepath.Clean(path)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.owner == nil {
		c.owner = make(map[string]string)
	}
	if prev, ok := c.owner[key]; ok {
		return fmt.Errorf("%w: %s is already written by %s", ErrOutputConflict, path, prev)
	}
	c.owner[key] = input
	return nil
}

// buildOne builds and writes a single document.
func buildOne(ctx context.Context, job buildJob, params *buildParams) BuildResult {
	start := time.Now()
	result := BuildResult{InputPath: job.Input}
	log := params.log.With("input", job.Input, "kind", job.Kind.String())

	doc, name, err := params.buildDocument(ctx, job)
	if err != nil {
		log.Debug("build failed", "err", err)
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	result.OutputPath = job.outputPath(params.cfg.Output.DefaultDir, name)
	if err := params.outputs.claim(result.OutputPath, job.Input); err != nil {
		log.Debug("output conflict", "output", result.OutputPath)
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}
	if err := params.writeOutputs(doc, result.OutputPath); err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	result.Duration = time.Since(start)
	log.Debug("document built", "output", result.OutputPath, "blocks", doc.Len(), "duration", result.Duration.Round(time.Millisecond))
	return result
}

// resolvePoolSize determines the worker count.
// Priority: explicit value > GOMAXPROCS-based calculation.
func resolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	// Auto-calculate based on GOMAXPROCS (adjusted by automaxprocs for containers)
	n := runtime.GOMAXPROCS(0) / 2

	// Minimum 1, maximum 8
	if n < 1 {
		return 1
	}
	if n > maxAutoWorkers {
		return maxAutoWorkers
	}
	return n
}

// ResultSummary holds the count of succeeded and failed builds.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed builds.
func countResults(results []BuildResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// summarize prints build results and returns the first failure. A single
// failed build is returned as is and left for the caller to print.
func summarize(results []BuildResult, quiet, verbose bool, env *Environment) error {
	summary := countResults(results)
	var firstErr error

	for _, r := range results {
		if r.Err != nil {
			if firstErr == nil {
				firstErr = r.Err
			}
			if len(results) > 1 {
				fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			}
			continue
		}

		if quiet {
			continue
		}

		fmt.Fprintf(env.Stdout, "Document saved to: %s\n", r.OutputPath)
		if verbose {
			fmt.Fprintf(env.Stdout, "  %s (%v)\n", r.InputPath, r.Duration.Round(time.Millisecond))
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	if firstErr != nil && len(results) > 1 {
		return fmt.Errorf("%d of %d builds failed: %w", summary.Failed, len(results), firstErr)
	}
	return firstErr
}
