// Package probe checks reachability of single hosts by shelling out to the
// system ping binary, one echo request per probe and no retries.
//
// The probing mechanism is abstracted behind the Prober interface so that
// sweeps can be tested deterministically with fake probers and without
// network access or elevated privileges.
//
// Limitations:
// - Hosts with ICMP disabled or firewalled will not respond
// - Some networks may rate-limit ICMP traffic
package probe
