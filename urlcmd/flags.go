package urlcmd

import (
	"github.com/spf13/pflag"
)

// AddOutputFlag registers the shared --output flag on a flag set. Commands
// built by this package read the bound value through cliout, so the same
// target can back a persistent root flag or a standalone command flag.
func AddOutputFlag(flags *pflag.FlagSet, target *string) {
	flags.StringVarP(target, "output", "o", "default", "Output format (default, json, yaml)")
}
