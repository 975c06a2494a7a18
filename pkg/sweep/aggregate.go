package sweep

import (
	"fmt"
	"sort"
	"sync/atomic"
	"time"

	mapsutil "github.com/projectdiscovery/utils/maps"

	"github.com/andyrodri-503/Ping-Sweep/pkg/netrange"
	"github.com/andyrodri-503/Ping-Sweep/pkg/probe"
)

// HostResult is the final outcome recorded for one address.
type HostResult struct {
	Address string
	Outcome probe.Outcome
}

// Result is the aggregate of a completed sweep. Hosts is sorted by address.
type Result struct {
	Hosts   []HostResult
	Up      int
	Down    int
	Errors  int
	Total   int
	Elapsed time.Duration
}

// Aggregator accumulates per-address outcomes arriving from concurrently
// completing probes and derives the final counts. Record is safe for
// concurrent use; it is the only state pool workers share.
type Aggregator struct {
	outcomes *mapsutil.SyncLockMap[string, probe.Outcome]
	expected int
	started  time.Time

	recorded atomic.Int64
	up       atomic.Int64
	down     atomic.Int64
	errored  atomic.Int64
}

// NewAggregator returns an aggregator expecting exactly one outcome for
// each of the expected addresses. The elapsed clock starts now.
func NewAggregator(expected int) *Aggregator {
	return &Aggregator{
		outcomes: mapsutil.NewSyncLockMap[string, probe.Outcome](),
		expected: expected,
		started:  time.Now(),
	}
}

// Record stores the outcome for one address and bumps exactly one of the
// up/down/error counts.
func (a *Aggregator) Record(address string, outcome probe.Outcome) {
	_ = a.outcomes.Set(address, outcome)
	a.recorded.Add(1)

	switch outcome.Status {
	case probe.StatusUp:
		a.up.Add(1)
	case probe.StatusDown:
		a.down.Add(1)
	default:
		a.errored.Add(1)
	}
}

// Finalize builds the result once every expected outcome has been recorded.
// Calling it earlier is a caller contract violation and yields an error
// rather than partial counts. The same holds when an address was recorded
// more than once.
func (a *Aggregator) Finalize() (*Result, error) {
	recorded := int(a.recorded.Load())
	if recorded != a.expected {
		return nil, fmt.Errorf("finalized with %d of %d outcomes recorded", recorded, a.expected)
	}

	result := &Result{
		Hosts:   make([]HostResult, 0, recorded),
		Up:      int(a.up.Load()),
		Down:    int(a.down.Load()),
		Errors:  int(a.errored.Load()),
		Elapsed: time.Since(a.started),
	}
	_ = a.outcomes.Iterate(func(address string, outcome probe.Outcome) error {
		result.Hosts = append(result.Hosts, HostResult{Address: address, Outcome: outcome})
		return nil
	})
	if len(result.Hosts) != a.expected {
		return nil, fmt.Errorf("recorded %d distinct addresses, expected %d", len(result.Hosts), a.expected)
	}
	result.Total = len(result.Hosts)

	// Completion order is nondeterministic, sort by address so repeated
	// sweeps produce identical output.
	sort.Slice(result.Hosts, func(i, j int) bool {
		return netrange.Less(result.Hosts[i].Address, result.Hosts[j].Address)
	})

	return result, nil
}
