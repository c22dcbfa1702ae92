package urlcmd

import (
	"fmt"
	"time"

	"github.com/rmja/nourl/cliout"
	"github.com/rmja/nourl/portutil"
	"github.com/rmja/nourl/urlcheck"
	"github.com/rmja/nourl/urlutil"
	"github.com/spf13/cobra"
)

// checkReport is the serializable form of a check run.
type checkReport struct {
	Results []urlcheck.Result `json:"results" yaml:"results"`
	Summary urlcheck.Summary  `json:"summary" yaml:"summary"`
}

// NewCheckCommand creates a command that probes URLs for reachability.
// It returns a non-nil error when any URL is unhealthy or invalid so that
// scripts can rely on the exit code.
func NewCheckCommand(outputFormat *string) *cobra.Command {
	var (
		timeout     time.Duration
		profileName string
	)

	cmd := &cobra.Command{
		Use:   "check <url>...",
		Short: "Probe URLs for reachability",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputFormat != nil {
				if err := cliout.SetFormat(*outputFormat); err != nil {
					return err
				}
			}

			var config urlcheck.Config
			if profileName != "" {
				profiles, err := urlcheck.LoadProfiles(".")
				if err != nil {
					return err
				}
				profile, err := profiles.GetProfile(profileName)
				if err != nil {
					return err
				}
				config = profile.CheckerConfig()
			}
			if cmd.Flags().Changed("timeout") {
				config.Timeout = timeout
			}

			checker := urlcheck.NewChecker(config)

			results := make([]urlcheck.Result, 0, len(args))
			for _, rawURL := range args {
				results = append(results, checker.Check(cmd.Context(), rawURL))
			}
			summary := urlcheck.Summarize(results)

			report := checkReport{Results: results, Summary: summary}
			if err := cliout.Print(report, func() {
				printCheckReport(results, summary)
			}); err != nil {
				return err
			}

			if failed := summary.Unhealthy + summary.Invalid; failed > 0 {
				return fmt.Errorf("%d of %d url(s) failed", failed, summary.Total)
			}
			return nil
		},
	}

	cmd.Flags().DurationVarP(&timeout, "timeout", "t", urlcheck.DefaultTimeout, "Probe timeout per URL")
	cmd.Flags().StringVar(&profileName, "profile", "", "Named check profile (default, strict, ci)")
	return cmd
}

func printCheckReport(results []urlcheck.Result, summary urlcheck.Summary) {
	for _, r := range results {
		switch r.Status {
		case urlcheck.StatusHealthy:
			cliout.Success("%s (%s, %dms)", r.URL, r.CheckType, r.ResponseTime.Milliseconds())
		case urlcheck.StatusInvalid:
			cliout.Error("%s: %s", r.URL, r.Error)
		case urlcheck.StatusUnhealthy:
			cliout.Error("%s: %s", r.URL, r.Error)
			if hint := localhostHint(r); hint != "" {
				cliout.Item("%s", cliout.Muted("%s", hint))
			}
		default:
			cliout.Warning("%s: %s", r.URL, r.Error)
		}
	}

	cliout.Newline()
	cliout.Plain("%d checked: %d healthy, %d unhealthy, %d invalid",
		summary.Total, summary.Healthy, summary.Unhealthy, summary.Invalid)
}

// localhostHint explains why a local endpoint probe may have failed by
// consulting the connection table. Best effort, an empty string means no
// hint is available.
func localhostHint(r urlcheck.Result) string {
	if !urlutil.IsLocalhost(r.Host) {
		return ""
	}

	listener, found, err := portutil.FindListener(r.Port)
	if err != nil {
		return ""
	}
	if !found {
		return fmt.Sprintf("nothing is listening on port %d", r.Port)
	}
	if listener.Name != "" {
		return fmt.Sprintf("port %d is held by %s (pid %d)", r.Port, listener.Name, listener.PID)
	}
	return fmt.Sprintf("port %d is held by pid %d", r.Port, listener.PID)
}
