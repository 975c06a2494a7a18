package sweep

import (
	"context"
	"errors"
	"fmt"
	"time"

	syncutil "github.com/projectdiscovery/utils/sync"

	"github.com/andyrodri-503/Ping-Sweep/pkg/probe"
)

// MaxConcurrency caps the worker pool size. Every in-flight probe holds a
// spawned ping process, so an unbounded pool would exhaust process and file
// descriptor limits long before it gained any speed.
const MaxConcurrency = 4096

// Task pairs one address with the timeout its probe is allowed to take.
// Each task is consumed exactly once by a pool worker.
type Task struct {
	Address string
	Timeout time.Duration
}

// Pool executes probe tasks with a fixed bound on in-flight probes.
type Pool struct {
	prober probe.Prober
	size   int
}

// NewPool returns a pool that runs at most size probes simultaneously.
func NewPool(prober probe.Prober, size int) (*Pool, error) {
	if prober == nil {
		return nil, errors.New("pool requires a prober")
	}
	if size < 1 || size > MaxConcurrency {
		return nil, fmt.Errorf("pool size must be between 1 and %d, got %d", MaxConcurrency, size)
	}
	return &Pool{prober: prober, size: size}, nil
}

// Size returns the concurrency bound of the pool.
func (p *Pool) Size() int {
	return p.size
}

// Run dispatches every task and blocks until all dispatched tasks have
// completed. Dispatch order among tasks is unspecified and one task's
// failure never affects its siblings.
//
// handler is invoked exactly once per dispatched task, from the worker
// goroutine and before the worker slot frees, so invocations from different
// slots may be concurrent and the handler must be safe for that.
//
// Cancelling ctx stops dispatching new tasks; tasks already in flight still
// run their handler. Run returns the context error when dispatching was cut
// short, after waiting for the in-flight tasks to drain.
func (p *Pool) Run(ctx context.Context, tasks []Task, handler func(address string, outcome probe.Outcome)) error {
	awg, err := syncutil.New(syncutil.WithSize(p.size))
	if err != nil {
		return err
	}

	for _, task := range tasks {
		select {
		case <-ctx.Done():
			awg.Wait()
			return ctx.Err()
		default:
		}

		awg.Add()
		go func(t Task) {
			defer awg.Done()
			handler(t.Address, p.prober.Probe(ctx, t.Address, t.Timeout))
		}(task)
	}

	awg.Wait()
	return nil
}
