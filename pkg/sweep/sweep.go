package sweep

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/andyrodri-503/Ping-Sweep/pkg/netrange"
	"github.com/andyrodri-503/Ping-Sweep/pkg/probe"
)

const (
	// DefaultConcurrency is the pool size used when none is configured.
	DefaultConcurrency = 32
	// DefaultTimeout is the per-probe timeout used when none is configured.
	DefaultTimeout = 300 * time.Millisecond
)

// State tracks a sweeper through its lifecycle. A sweeper moves from Idle
// through Enumerating, Running and Aggregating to Done; Aborted is terminal
// and reached only on a fatal condition.
type State int32

const (
	StateIdle State = iota
	StateEnumerating
	StateRunning
	StateAggregating
	StateDone
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateEnumerating:
		return "enumerating"
	case StateRunning:
		return "running"
	case StateAggregating:
		return "aggregating"
	case StateDone:
		return "done"
	case StateAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Options configure a Sweeper.
type Options struct {
	// Concurrency bounds the number of probes in flight. Zero selects
	// DefaultConcurrency; values above MaxConcurrency are capped.
	Concurrency int
	// Timeout is the per-probe timeout. Zero selects DefaultTimeout;
	// anything below probe.MinTimeout is clamped to it.
	Timeout time.Duration
	// OnStart, when set, is called once the host list is known and before
	// any probe is dispatched.
	OnStart func(hosts int)
	// OnResult, when set, is called for every completed probe. It runs on
	// worker goroutines and must be safe for concurrent invocation.
	OnResult func(address string, outcome probe.Outcome)
}

// Sweeper coordinates one reachability sweep end to end: enumeration,
// bounded-concurrency probing and result aggregation.
type Sweeper struct {
	prober  probe.Prober
	options Options
	state   atomic.Int32
}

// New returns a sweeper using the given prober. The prober is injected
// rather than hard-wired so sweeps can be driven by fakes in tests.
func New(prober probe.Prober, options Options) (*Sweeper, error) {
	if prober == nil {
		return nil, errors.New("sweeper requires a prober")
	}
	if options.Concurrency == 0 {
		options.Concurrency = DefaultConcurrency
	}
	if options.Concurrency < 1 {
		return nil, fmt.Errorf("concurrency must be positive, got %d", options.Concurrency)
	}
	if options.Concurrency > MaxConcurrency {
		options.Concurrency = MaxConcurrency
	}
	if options.Timeout == 0 {
		options.Timeout = DefaultTimeout
	}
	if options.Timeout < probe.MinTimeout {
		options.Timeout = probe.MinTimeout
	}
	return &Sweeper{prober: prober, options: options}, nil
}

// State returns the current lifecycle state.
func (s *Sweeper) State() State {
	return State(s.state.Load())
}

func (s *Sweeper) setState(state State) {
	s.state.Store(int32(state))
}

// Sweep expands targets into host addresses and probes each exactly once,
// blocking until every probe has completed. It returns the aggregated
// result, or an error when the target specification is invalid or the
// probing mechanism turns out to be unavailable. On a fatal error any
// partial results are discarded.
func (s *Sweeper) Sweep(ctx context.Context, targets []string) (*Result, error) {
	s.setState(StateEnumerating)
	hosts, err := netrange.Expand(targets)
	if err != nil {
		s.setState(StateAborted)
		return nil, err
	}

	aggregator := NewAggregator(len(hosts))
	if s.options.OnStart != nil {
		s.options.OnStart(len(hosts))
	}

	// An empty range is a valid sweep with zero work; the pool is never
	// touched.
	if len(hosts) == 0 {
		return s.finalize(aggregator)
	}

	pool, err := NewPool(s.prober, s.options.Concurrency)
	if err != nil {
		s.setState(StateAborted)
		return nil, err
	}

	tasks := make([]Task, 0, len(hosts))
	for _, host := range hosts {
		tasks = append(tasks, Task{Address: host, Timeout: s.options.Timeout})
	}

	s.setState(StateRunning)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var fatalOnce sync.Once
	var fatalErr error

	poolErr := pool.Run(runCtx, tasks, func(address string, outcome probe.Outcome) {
		if outcome.Fatal() {
			// Stop dispatching and terminate in-flight probes; whatever
			// was recorded so far is thrown away below.
			fatalOnce.Do(func() {
				fatalErr = outcome.Err
				cancel()
			})
			return
		}
		aggregator.Record(address, outcome)
		if s.options.OnResult != nil {
			s.options.OnResult(address, outcome)
		}
	})

	// Run returns only after every dispatched task has drained, so reading
	// fatalErr here is safe.
	if fatalErr != nil {
		s.setState(StateAborted)
		return nil, fatalErr
	}
	if poolErr != nil {
		s.setState(StateAborted)
		return nil, poolErr
	}

	return s.finalize(aggregator)
}

func (s *Sweeper) finalize(aggregator *Aggregator) (*Result, error) {
	s.setState(StateAggregating)
	result, err := aggregator.Finalize()
	if err != nil {
		s.setState(StateAborted)
		return nil, err
	}
	s.setState(StateDone)
	return result, nil
}
