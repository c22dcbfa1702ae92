package portutil

import (
	"fmt"

	gopsnet "github.com/shirou/gopsutil/v4/net"
	"github.com/shirou/gopsutil/v4/process"
)

// IsProcessRunning checks if a process with the given PID is running.
// Works cross-platform (Windows and Unix).
func IsProcessRunning(pid int32) bool {
	if pid <= 0 {
		return false
	}

	running, err := process.PidExists(pid)
	if err != nil {
		return false
	}
	return running
}

// Listener describes the process holding a listening TCP socket.
type Listener struct {
	// PID is the listening process id.
	PID int32 `json:"pid"`
	// Name is the process executable name. It may be empty when the
	// process information is not accessible.
	Name string `json:"name,omitempty"`
}

// FindListener looks up the process listening on the given local TCP port.
// It returns the listener and true when one is found, and false when no
// process is listening on the port. An error is returned only when the
// connection table itself cannot be read.
func FindListener(port uint16) (Listener, bool, error) {
	conns, err := gopsnet.Connections("tcp")
	if err != nil {
		return Listener{}, false, fmt.Errorf("failed to read tcp connections: %w", err)
	}

	for _, conn := range conns {
		if conn.Status != "LISTEN" || conn.Laddr.Port != uint32(port) {
			continue
		}

		listener := Listener{PID: conn.Pid}
		if proc, err := process.NewProcess(conn.Pid); err == nil {
			// Name is best-effort: the socket owner may have exited or
			// belong to another user.
			if name, err := proc.Name(); err == nil {
				listener.Name = name
			}
		}
		return listener, true, nil
	}

	return Listener{}, false, nil
}
