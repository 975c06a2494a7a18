package runner

import (
	"context"
	"strings"
	"time"

	"github.com/projectdiscovery/gologger"
	errorutil "github.com/projectdiscovery/utils/errors"
	"github.com/rs/xid"

	"github.com/andyrodri-503/Ping-Sweep/pkg/netrange"
	"github.com/andyrodri-503/Ping-Sweep/pkg/probe"
	"github.com/andyrodri-503/Ping-Sweep/pkg/sweep"
)

// Runner contains the internal logic of the program
type Runner struct {
	options *Options
	prober  probe.Prober
	sweepID string
}

// NewRunner instance driving the given prober. Callers resolve the probing
// mechanism themselves so that a misconfigured system fails before any
// enumeration happens and so that orchestration stays testable.
func NewRunner(options *Options, prober probe.Prober) (*Runner, error) {
	if prober == nil {
		return nil, errorutil.New("prober must not be nil")
	}
	return &Runner{
		options: options,
		prober:  prober,
		sweepID: xid.New().String(),
	}, nil
}

// Run the sweep and print the summary.
func (r *Runner) Run(ctx context.Context) error {
	targets := []string(r.options.Networks)
	if r.options.AutoDiscover {
		discovered, err := netrange.LocalNetworks()
		if err != nil {
			return errorutil.NewWithErr(err).Msgf("could not discover local networks")
		}
		if len(discovered) == 0 {
			return errorutil.New("no local networks found to sweep")
		}
		gologger.Verbose().Msgf("discovered local networks: %s", strings.Join(discovered, ", "))
		targets = append(targets, discovered...)
	}

	gologger.Verbose().Msgf("sweep %s starting", r.sweepID)

	sweeper, err := sweep.New(r.prober, sweep.Options{
		Concurrency: r.options.Concurrency,
		Timeout:     time.Duration(r.options.TimeoutMs) * time.Millisecond,
		OnStart: func(hosts int) {
			gologger.Info().Msgf("Starting sweep of %s (%d hosts) with %d workers",
				strings.Join(targets, ", "), hosts, r.options.Concurrency)
		},
		OnResult: r.logResult,
	})
	if err != nil {
		return err
	}

	result, err := sweeper.Sweep(ctx, targets)
	if err != nil {
		return err
	}

	gologger.Silent().Msgf("%d/%d hosts up (%.1fs)",
		au.Green(result.Up), result.Total, result.Elapsed.Seconds())
	return nil
}

// logResult prints one per-host status line. It runs on pool worker
// goroutines; gologger is safe for concurrent use.
func (r *Runner) logResult(address string, outcome probe.Outcome) {
	switch outcome.Status {
	case probe.StatusUp:
		gologger.Verbose().Msgf("%s is %s (%s)", address, au.Green("UP"), outcome.RTT.Round(time.Millisecond))
	case probe.StatusDown:
		gologger.Verbose().Msgf("%s is %s", address, au.Red("DOWN"))
	default:
		gologger.Error().Msgf("error probing %s: %s", address, outcome.Err)
	}
}
