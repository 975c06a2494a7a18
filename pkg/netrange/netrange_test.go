package netrange

import (
	"net"
	"sort"
	"testing"
)

func TestExpand(t *testing.T) {
	tests := []struct {
		name      string
		targets   []string
		wantHosts []string
		wantErr   bool
	}{
		{
			name:      "/30 network has two usable hosts",
			targets:   []string{"10.0.0.0/30"},
			wantHosts: []string{"10.0.0.1", "10.0.0.2"},
		},
		{
			name:      "/32 network has no usable hosts",
			targets:   []string{"10.0.0.0/32"},
			wantHosts: nil,
		},
		{
			name:      "individual IP",
			targets:   []string{"192.168.1.7"},
			wantHosts: []string{"192.168.1.7"},
		},
		{
			name:      "duplicate targets are collapsed",
			targets:   []string{"10.0.0.1", "10.0.0.0/30"},
			wantHosts: []string{"10.0.0.1", "10.0.0.2"},
		},
		{
			name:    "invalid target",
			targets: []string{"not-a-network"},
			wantErr: true,
		},
		{
			name:    "ipv6 /64 is too large to enumerate",
			targets: []string{"fe80::/64"},
			wantErr: true,
		},
		{
			name:    "ipv4 /8 is too large to enumerate",
			targets: []string{"10.0.0.0/8"},
			wantErr: true,
		},
		{
			name:    "invalid target after valid one",
			targets: []string{"10.0.0.0/30", "999.1.2.3/24"},
			wantErr: true,
		},
		{
			name:      "no targets",
			targets:   nil,
			wantHosts: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hosts, err := Expand(tt.targets)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Expand() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(hosts) != len(tt.wantHosts) {
				t.Fatalf("Expand() = %v, want %v", hosts, tt.wantHosts)
			}
			for i := range hosts {
				if hosts[i] != tt.wantHosts[i] {
					t.Errorf("Expand()[%d] = %s, want %s", i, hosts[i], tt.wantHosts[i])
				}
			}
		})
	}
}

func TestExpandExcludesNetworkAndBroadcast(t *testing.T) {
	hosts, err := Expand([]string{"192.168.1.0/24"})
	if err != nil {
		t.Fatalf("Expand() error = %v", err)
	}
	if len(hosts) != 254 {
		t.Fatalf("Expand() returned %d hosts, want 254", len(hosts))
	}
	for _, host := range hosts {
		if host == "192.168.1.0" || host == "192.168.1.255" {
			t.Errorf("network/broadcast address should be excluded: %s", host)
		}
	}
}

func TestExpandUnique(t *testing.T) {
	hosts, err := Expand([]string{"10.0.0.0/29", "10.0.0.0/30"})
	if err != nil {
		t.Fatalf("Expand() error = %v", err)
	}
	seen := make(map[string]int)
	for _, host := range hosts {
		seen[host]++
	}
	for host, count := range seen {
		if count != 1 {
			t.Errorf("host %s appears %d times, want exactly once", host, count)
		}
	}
}

func TestIsNetworkOrBroadcast(t *testing.T) {
	_, network, _ := net.ParseCIDR("192.168.1.0/24")

	tests := []struct {
		name string
		ip   string
		want bool
	}{
		{name: "network address", ip: "192.168.1.0", want: true},
		{name: "broadcast address", ip: "192.168.1.255", want: true},
		{name: "first usable host", ip: "192.168.1.1", want: false},
		{name: "last usable host", ip: "192.168.1.254", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNetworkOrBroadcast(net.ParseIP(tt.ip), network); got != tt.want {
				t.Errorf("IsNetworkOrBroadcast(%s) = %v, want %v", tt.ip, got, tt.want)
			}
		})
	}

	if IsNetworkOrBroadcast(net.ParseIP("192.168.1.0"), nil) {
		t.Error("nil network should never match")
	}

	_, v6net, _ := net.ParseCIDR("fd00::/64")
	if !IsNetworkOrBroadcast(net.ParseIP("ff02::1"), v6net) {
		t.Error("IPv6 multicast should be excluded")
	}
}

func TestLess(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{name: "numeric not lexicographic", a: "10.0.0.2", b: "10.0.0.10", want: true},
		{name: "reverse", a: "10.0.0.10", b: "10.0.0.2", want: false},
		{name: "equal", a: "10.0.0.1", b: "10.0.0.1", want: false},
		{name: "ipv4 before ipv6", a: "192.168.1.1", b: "fd00::1", want: true},
		{name: "ipv6 after ipv4", a: "fd00::1", b: "192.168.1.1", want: false},
		{name: "ipv6 ordering", a: "fd00::1", b: "fd00::2", want: true},
		{name: "non-ip sorts last", a: "10.0.0.1", b: "zzz", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Less(tt.a, tt.b); got != tt.want {
				t.Errorf("Less(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestLessSortsExpandedRange(t *testing.T) {
	hosts, err := Expand([]string{"10.0.0.0/28"})
	if err != nil {
		t.Fatalf("Expand() error = %v", err)
	}
	sort.Slice(hosts, func(i, j int) bool { return Less(hosts[i], hosts[j]) })
	if hosts[0] != "10.0.0.1" {
		t.Errorf("first sorted host = %s, want 10.0.0.1", hosts[0])
	}
	if hosts[len(hosts)-1] != "10.0.0.14" {
		t.Errorf("last sorted host = %s, want 10.0.0.14", hosts[len(hosts)-1])
	}
}

func TestLocalNetworks(t *testing.T) {
	networks, err := LocalNetworks()
	if err != nil {
		t.Fatalf("LocalNetworks() error = %v", err)
	}
	// The set depends on the machine; only structural properties can be
	// asserted: every entry is a private IPv4 /24, expandable, unique.
	seen := make(map[string]struct{})
	for _, network := range networks {
		ip, ipNet, err := net.ParseCIDR(network)
		if err != nil {
			t.Fatalf("LocalNetworks() returned invalid CIDR %s: %v", network, err)
		}
		if ip.To4() == nil {
			t.Errorf("LocalNetworks() returned non-IPv4 range %s", network)
		}
		if ones, _ := ipNet.Mask.Size(); ones != 24 {
			t.Errorf("LocalNetworks() returned %s, want a /24", network)
		}
		if _, err := Expand([]string{network}); err != nil {
			t.Errorf("LocalNetworks() range %s does not expand: %v", network, err)
		}
		if _, dup := seen[network]; dup {
			t.Errorf("LocalNetworks() returned duplicate %s", network)
		}
		seen[network] = struct{}{}
	}
}
