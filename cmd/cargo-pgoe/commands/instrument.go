package commands

import (
	"strings"

	"github.com/Kingbultsea/cargo-pgo/internal/app"
	"github.com/Kingbultsea/cargo-pgo/internal/core/domain"
	"github.com/spf13/cobra"
)

const keepProfilesFlag = "keep-profiles"

func (c *CLI) newInstrumentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "instrument [build|bench] [cargo args...]",
		Short: "Build PGO-instrumented artifacts",
		Long: "Runs cargo build (or bench) with -Cprofile-generate so that the produced\n" +
			"artifacts write .profraw files into <target>/pgo-profiles when executed.\n" +
			"Every argument after the command is passed to cargo.",
		// cargo flags are not known to cobra, so arguments are parsed by hand.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, help, err := parseInstrumentArgs(args)
			if err != nil {
				return err
			}
			if help {
				return cmd.Help()
			}
			return c.app.Instrument(cmd.Context(), opts)
		},
	}
	cmd.Flags().Bool(keepProfilesFlag, false, "Do not remove existing profiles before the build")
	return cmd
}

// parseInstrumentArgs reads our options and the optional command kind.
// --keep-profiles is accepted on either side of the kind; parsing stops at
// the first token that is not ours and the rest belongs to cargo.
func parseInstrumentArgs(args []string) (app.InstrumentOptions, bool, error) {
	opts := app.InstrumentOptions{Kind: domain.CommandBuild}
	kindSeen := false

	i := 0
	for ; i < len(args); i++ {
		arg := args[i]
		if arg == "--"+keepProfilesFlag {
			opts.KeepProfiles = true
			continue
		}
		if kindSeen {
			break
		}
		if arg == "-h" || arg == "--help" {
			return opts, true, nil
		}
		if strings.HasPrefix(arg, "-") {
			break
		}

		kind, err := domain.ParseCommandKind(arg)
		if err != nil {
			return opts, false, err
		}
		opts.Kind = kind
		kindSeen = true
	}

	opts.Args = append([]string(nil), args[i:]...)
	return opts, false, nil
}
