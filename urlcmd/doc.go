// Package urlcmd provides the cobra commands behind the nourl CLI.
//
// Each command is exposed as a constructor so it can be mounted on any
// cobra command tree. NewRootCommand assembles the full tree:
//
//	root := urlcmd.NewRootCommand(version.New("nourl"))
//	if err := root.Execute(); err != nil {
//	    os.Exit(1)
//	}
//
// # Commands
//
//   - parse: parse URLs and display their components, optionally opening
//     the first one in a browser
//   - check: probe URLs for reachability with optional named profiles
//   - lint: validate an endpoints manifest
//   - version: display version information
//
// # Output Formats
//
// All commands honor the shared --output flag (default, json, yaml),
// registered via AddOutputFlag. Commands print through cliout so the
// format applies uniformly.
//
// # Exit Codes
//
// check and lint return non-nil errors when endpoints fail or the
// manifest has issues, so shell scripts can branch on the exit code.
package urlcmd
