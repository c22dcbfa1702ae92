package urlcmd

import (
	"github.com/rmja/nourl/cliout"
	"github.com/rmja/nourl/logutil"
	"github.com/rmja/nourl/version"
	"github.com/spf13/cobra"
)

// NewRootCommand assembles the nourl command tree.
func NewRootCommand(info *version.Info) *cobra.Command {
	var (
		outputFormat string
		noColor      bool
		debug        bool
	)

	rootCmd := &cobra.Command{
		Use:   "nourl",
		Short: "Parse, validate and probe service URLs",
		Long: `nourl parses http, https, mqtt and mqtts URLs into their components,
lints endpoint manifests, and probes endpoints for reachability.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logutil.SetupLogger(debug, false)
			if noColor {
				cliout.NoColor()
			}
			return cliout.SetFormat(outputFormat)
		},
	}

	AddOutputFlag(rootCmd.PersistentFlags(), &outputFormat)
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(
		NewParseCommand(&outputFormat),
		NewCheckCommand(&outputFormat),
		NewLintCommand(&outputFormat),
		version.NewCommand(info, &outputFormat),
	)

	return rootCmd
}
