// Package cliout provides structured output formatting for CLI commands.
//
// It supports three output formats selected through SetFormat:
//
//   - default: human-readable text with ANSI colors and Unicode symbols
//   - json: machine-readable JSON via PrintJSON
//   - yaml: machine-readable YAML via PrintYAML
//
// Commands render a result object through Print, which marshals it in the
// machine formats and falls back to a formatter callback for the default
// format:
//
//	result := checkResult{URL: u.String(), Status: "healthy"}
//	return cliout.Print(result, func() {
//	    cliout.Success("%s is %s", cliout.URL(result.URL), cliout.Status(result.Status))
//	})
//
// # Color
//
// Color is enabled only when stdout is a terminal. NoColor and ForceColor
// override the detection, which commands expose as a --no-color flag.
// Symbols degrade to ASCII on terminals without Unicode support.
package cliout
