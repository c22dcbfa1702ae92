package urlcmd

import (
	"fmt"

	"github.com/rmja/nourl/cliout"
	"github.com/rmja/nourl/endpoints"
	"github.com/spf13/cobra"
)

// lintIssue is the serializable form of a manifest issue.
type lintIssue struct {
	Endpoint string `json:"endpoint" yaml:"endpoint"`
	Error    string `json:"error" yaml:"error"`
}

// NewLintCommand creates a command that lints an endpoints manifest.
// It returns a non-nil error when the manifest has issues.
func NewLintCommand(outputFormat *string) *cobra.Command {
	var manifestPath string

	cmd := &cobra.Command{
		Use:   "lint",
		Short: "Lint an endpoints manifest",
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputFormat != nil {
				if err := cliout.SetFormat(*outputFormat); err != nil {
					return err
				}
			}

			manifest, err := endpoints.Load(manifestPath)
			if err != nil {
				return err
			}

			issues := endpoints.Lint(manifest)
			rows := make([]lintIssue, 0, len(issues))
			for _, issue := range issues {
				rows = append(rows, lintIssue{Endpoint: issue.Endpoint, Error: issue.Err.Error()})
			}

			if err := cliout.Print(rows, func() {
				printLintIssues(manifest, issues)
			}); err != nil {
				return err
			}

			if len(issues) > 0 {
				return fmt.Errorf("%d issue(s) in %s", len(issues), manifestPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "file", "f", "endpoints.yaml", "Path to the endpoints manifest")
	return cmd
}

func printLintIssues(manifest *endpoints.Manifest, issues []endpoints.Issue) {
	if len(issues) == 0 {
		cliout.Success("%d endpoint(s) look good", len(manifest.Endpoints))
		return
	}

	for _, issue := range issues {
		cliout.Error("%s: %v", issue.Endpoint, issue.Err)
	}
}
