package urlcmd

import (
	"fmt"
	"strconv"

	"github.com/rmja/nourl"
	"github.com/rmja/nourl/browser"
	"github.com/rmja/nourl/cliout"
	"github.com/spf13/cobra"
)

// parseResult is the serializable form of a parsed URL.
type parseResult struct {
	URL    string `json:"url" yaml:"url"`
	Scheme string `json:"scheme" yaml:"scheme"`
	Host   string `json:"host" yaml:"host"`
	Port   uint16 `json:"port" yaml:"port"`
	Path   string `json:"path" yaml:"path"`
	Query  string `json:"query,omitempty" yaml:"query,omitempty"`
	Secure bool   `json:"secure" yaml:"secure"`
}

func newParseResult(u nourl.URL) parseResult {
	query, _ := u.Query()
	return parseResult{
		URL:    u.String(),
		Scheme: u.Scheme().String(),
		Host:   u.Host(),
		Port:   u.PortOrDefault(),
		Path:   u.Path(),
		Query:  query,
		Secure: u.Scheme().IsSecure(),
	}
}

// NewParseCommand creates a command that parses URLs and displays their
// components. The first URL can be opened in a browser with --open.
func NewParseCommand(outputFormat *string) *cobra.Command {
	var open bool

	cmd := &cobra.Command{
		Use:   "parse <url>...",
		Short: "Parse URLs and display their components",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputFormat != nil {
				if err := cliout.SetFormat(*outputFormat); err != nil {
					return err
				}
			}

			results := make([]parseResult, 0, len(args))
			for _, rawURL := range args {
				u, err := nourl.Parse(rawURL)
				if err != nil {
					return fmt.Errorf("parse %s: %w", rawURL, err)
				}
				results = append(results, newParseResult(u))
			}

			var data interface{} = results
			if len(results) == 1 {
				data = results[0]
			}

			if err := cliout.Print(data, func() {
				for _, r := range results {
					printParseResult(r)
				}
			}); err != nil {
				return err
			}

			return browser.OpenSkippable(args[0], !open)
		},
	}

	cmd.Flags().BoolVar(&open, "open", false, "Open the first URL in the system browser")
	return cmd
}

func printParseResult(r parseResult) {
	cliout.Header(r.URL)
	cliout.Label("Scheme", r.Scheme)
	cliout.Label("Host", r.Host)
	cliout.Label("Port", strconv.Itoa(int(r.Port)))
	cliout.Label("Path", r.Path)
	if r.Query != "" {
		cliout.Label("Query", r.Query)
	}
	if r.Secure {
		cliout.Label("Secure", "yes")
	} else {
		cliout.Label("Secure", "no")
	}
}
