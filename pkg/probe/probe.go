package probe

import (
	"context"
	"errors"
	"io/fs"
	"os/exec"
	"time"
)

// ErrUnavailable signals that the ping binary cannot be invoked on this
// system at all. Unlike a per-host failure this is fatal for a whole sweep:
// no host can be probed, so no host may be reported as down.
var ErrUnavailable = errors.New("ping binary not available on this system")

// MinTimeout is the smallest per-probe timeout handed to the ping binary.
// Zero or negative timeouts are clamped to it.
const MinTimeout = time.Millisecond

// Status classifies the result of a single probe.
type Status int

const (
	// StatusUp means the host answered the echo request.
	StatusUp Status = iota
	// StatusDown means the probe ran but the host did not answer in time.
	StatusDown
	// StatusError means the probe itself failed to run.
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusUp:
		return "up"
	case StatusDown:
		return "down"
	default:
		return "error"
	}
}

// Outcome is the result of probing one address exactly once.
type Outcome struct {
	Status Status
	RTT    time.Duration // wall time the probe attempt took
	Err    error         // set when Status is StatusError
}

// Fatal reports whether the outcome carries the unavailable-mechanism error
// that must abort the whole sweep instead of marking one host down.
func (o Outcome) Fatal() bool {
	return errors.Is(o.Err, ErrUnavailable)
}

// Prober checks reachability of a single address within a timeout.
type Prober interface {
	Probe(ctx context.Context, address string, timeout time.Duration) Outcome
}

// ProberFunc adapts a plain function to the Prober interface.
type ProberFunc func(ctx context.Context, address string, timeout time.Duration) Outcome

// Probe calls f.
func (f ProberFunc) Probe(ctx context.Context, address string, timeout time.Duration) Outcome {
	return f(ctx, address, timeout)
}

// CommandProber probes by spawning the system ping binary. Each call sends
// a single echo request; ping's own timeout handling decides how long the
// probe may take.
type CommandProber struct {
	path string
}

// NewCommandProber resolves the ping binary in PATH and returns a prober
// invoking it. A system without an invokable ping binary is a configuration
// failure and yields ErrUnavailable.
func NewCommandProber() (*CommandProber, error) {
	path, err := exec.LookPath(pingBinary)
	if err != nil {
		return nil, ErrUnavailable
	}
	return &CommandProber{path: path}, nil
}

// Probe sends one echo request to address. A zero exit status means the
// host answered; any non-zero exit, including ping timing out on its own,
// counts as down. Cancelling ctx terminates the spawned process.
func (p *CommandProber) Probe(ctx context.Context, address string, timeout time.Duration) Outcome {
	if timeout < MinTimeout {
		timeout = MinTimeout
	}

	start := time.Now()
	cmd := exec.CommandContext(ctx, p.path, pingArgs(address, timeout)...)
	err := cmd.Run()
	rtt := time.Since(start)

	switch {
	case err == nil:
		return Outcome{Status: StatusUp, RTT: rtt}
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, fs.ErrNotExist):
		// The binary disappeared between lookup and invocation.
		return Outcome{Status: StatusError, RTT: rtt, Err: ErrUnavailable}
	default:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return Outcome{Status: StatusDown, RTT: rtt}
		}
		return Outcome{Status: StatusError, RTT: rtt, Err: err}
	}
}
