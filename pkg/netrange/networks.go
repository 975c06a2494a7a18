package netrange

import "net"

// LocalNetworks returns the network ranges attached to the local machine as
// sweep targets: the private IPv4 networks of up, non-loopback interfaces,
// collapsed to /24. IPv6 ranges are not returned: the smallest customary
// IPv6 subnet is a /64, far too large to enumerate host by host, and
// link-local addresses additionally need a zone to be pingable.
func LocalNetworks() ([]string, error) {
	interfaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}

	var networks []string
	seen := make(map[string]struct{})

	for _, iface := range interfaces {
		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		if iface.Flags&net.FlagUp == 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}

		for _, addr := range addrs {
			ipNet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}

			ip4 := ipNet.IP.To4()
			if ip4 == nil {
				continue
			}
			if !ip4.IsPrivate() {
				continue
			}

			mask24 := net.CIDRMask(24, 32)
			network24 := net.IPNet{IP: ip4.Mask(mask24), Mask: mask24}

			key := network24.String()
			if _, exists := seen[key]; exists {
				continue
			}
			seen[key] = struct{}{}
			networks = append(networks, key)
		}
	}

	return networks, nil
}
