// Package portutil provides local TCP port and process introspection.
//
// It answers the question "who is listening on this port?" for URL checks
// against localhost: when a connection to http://localhost:8088 fails, the
// check command uses this package to report whether anything is bound to
// port 8088 at all, and if so which process.
//
// # Implementation
//
// This package wraps github.com/shirou/gopsutil/v4 for reliable
// cross-platform detection. gopsutil uses platform-specific APIs:
//
//   - Windows: Native Windows API (OpenProcess, GetExtendedTcpTable)
//   - Linux: /proc filesystem
//   - macOS/BSD: sysctl system calls
//
// This avoids the stale PID issues that affect os.FindProcess + Signal(0)
// on Windows.
//
// # Example Usage
//
//	// Explain a failed localhost probe
//	if listener, found, err := portutil.FindListener(8088); err == nil {
//	    if found {
//	        fmt.Printf("port 8088 is held by %s (pid %d)\n", listener.Name, listener.PID)
//	    } else {
//	        fmt.Println("nothing is listening on port 8088")
//	    }
//	}
//
//	// Check if a recorded PID is still alive
//	if portutil.IsProcessRunning(pid) {
//	    fmt.Printf("process %d is running\n", pid)
//	}
package portutil
