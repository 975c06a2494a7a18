package netrange

import (
	"fmt"
	"net"

	"github.com/projectdiscovery/mapcidr"
)

// maxHostBits bounds how large a single target range may be. Expansion
// materializes every address of a range, so an unbounded prefix such as an
// IPv6 /64 would never finish enumerating, let alone probing.
const maxHostBits = 20

// Expand parses every target as either CIDR notation or an individual IP
// and returns the deduplicated list of usable host addresses. CIDRs are
// expanded to all contained addresses with the network and broadcast
// (multicast for IPv6) addresses dropped. Any target that is neither a
// valid CIDR nor a valid IP fails the whole expansion, as does a range
// with more than 2^maxHostBits addresses.
func Expand(targets []string) ([]string, error) {
	var hosts []string
	seen := make(map[string]struct{})

	add := func(addr string) {
		if _, exists := seen[addr]; exists {
			return
		}
		seen[addr] = struct{}{}
		hosts = append(hosts, addr)
	}

	for _, target := range targets {
		if _, network, err := net.ParseCIDR(target); err == nil {
			if ones, bits := network.Mask.Size(); bits-ones > maxHostBits {
				return nil, fmt.Errorf("range %s is too large to sweep (more than 2^%d addresses)", target, maxHostBits)
			}
			ips, err := mapcidr.IPAddresses(network.String())
			if err != nil {
				return nil, fmt.Errorf("failed to expand CIDR %s: %w", target, err)
			}
			for _, ipStr := range ips {
				ip := net.ParseIP(ipStr)
				if ip == nil {
					continue
				}
				if IsNetworkOrBroadcast(ip, network) {
					continue
				}
				add(ip.String())
			}
			continue
		}

		if ip := net.ParseIP(target); ip != nil {
			add(ip.String())
			continue
		}

		return nil, fmt.Errorf("invalid target format: %s (must be CIDR or IP)", target)
	}

	return hosts, nil
}

// IsNetworkOrBroadcast reports whether ip is the network address of the
// given network, its IPv4 broadcast address, or an IPv6 multicast address.
// None of these identify a single probeable host.
func IsNetworkOrBroadcast(ip net.IP, network *net.IPNet) bool {
	if network == nil {
		return false
	}

	if ip.Equal(network.IP) {
		return true
	}

	if ip4 := ip.To4(); ip4 != nil {
		broadcast := make(net.IP, len(network.IP))
		copy(broadcast, network.IP)
		for i := range broadcast {
			broadcast[i] |= ^network.Mask[i]
		}
		return ip.Equal(broadcast)
	}

	return ip.IsMulticast()
}

// Less defines a total ordering over textual addresses so that sweep
// results can be sorted deterministically: IPv4 before IPv6, then bytewise.
// Strings that do not parse as IPs order after all IPs, lexicographically.
func Less(a, b string) bool {
	ipA := net.ParseIP(a)
	ipB := net.ParseIP(b)

	switch {
	case ipA == nil && ipB == nil:
		return a < b
	case ipA == nil:
		return false
	case ipB == nil:
		return true
	}

	a4 := ipA.To4()
	b4 := ipB.To4()
	if a4 != nil && b4 == nil {
		return true
	}
	if a4 == nil && b4 != nil {
		return false
	}
	if a4 != nil {
		ipA, ipB = a4, b4
	} else {
		ipA, ipB = ipA.To16(), ipB.To16()
	}

	for i := 0; i < len(ipA) && i < len(ipB); i++ {
		if ipA[i] != ipB[i] {
			return ipA[i] < ipB[i]
		}
	}
	return len(ipA) < len(ipB)
}
