// Package netrange expands textual network targets into the concrete set
// of probeable host addresses.
//
// Targets can be CIDR notation (e.g., "192.168.1.0/24") or individual IPs
// (e.g., "192.168.1.1"). Network, broadcast and multicast addresses are
// never considered probeable hosts. The package also discovers the private
// networks attached to local interfaces for automatic sweeps.
package netrange
