// Package sweep implements the concurrent reachability sweep engine.
//
// A sweep expands its targets into host addresses, probes every address
// through a fixed-size worker pool and aggregates the outcomes into final
// up/down/error counts. Completion order is unspecified; results are sorted
// by address before being returned so repeated sweeps are reproducible.
//
// Per-host probe failures are contained and become outcomes. The only
// condition that aborts a sweep is the probing mechanism being unavailable
// on the host system, in which case partial results are discarded and a
// single fatal error is returned.
package sweep
