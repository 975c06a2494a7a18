//go:build !windows

package probe

import (
	"strconv"
	"time"
)

const pingBinary = "ping"

// pingArgs builds the arguments for a single echo request. Unix ping takes
// its -W timeout in whole seconds, so sub-second timeouts round up to 1s.
func pingArgs(address string, timeout time.Duration) []string {
	secs := int((timeout + time.Second - 1) / time.Second)
	if secs < 1 {
		secs = 1
	}
	return []string{"-c", "1", "-W", strconv.Itoa(secs), address}
}
