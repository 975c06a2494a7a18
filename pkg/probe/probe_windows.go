//go:build windows

package probe

import (
	"strconv"
	"time"
)

const pingBinary = "ping"

// pingArgs builds the arguments for a single echo request. Windows ping
// takes its -w timeout in milliseconds.
func pingArgs(address string, timeout time.Duration) []string {
	return []string{"-n", "1", "-w", strconv.FormatInt(timeout.Milliseconds(), 10), address}
}
