// Package instrument prepares and consumes PGO-instrumented cargo builds.
package instrument

import (
	"fmt"
	"strings"

	"github.com/Kingbultsea/cargo-pgo/internal/core/domain"
	"github.com/Kingbultsea/cargo-pgo/internal/core/ports"
)

const (
	flagRelease       = "--release"
	flagReleaseShort  = "-r"
	flagMessageFormat = "--message-format"
	flagTarget        = "--target"
	argSeparator      = "--"
)

// Sanitize removes the cargo flags owned by the instrumented build and
// records whether the user picked a target. Every removed flag is logged as
// a warning. Tokens after a bare "--" are passed through untouched.
func Sanitize(args []string, log ports.Logger) domain.SanitizedArgs {
	out := domain.SanitizedArgs{Args: make([]string, 0, len(args))}

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch {
		case arg == argSeparator:
			out.Args = append(out.Args, args[i:]...)
			return out

		case arg == flagRelease || arg == flagReleaseShort:
			log.Warn(fmt.Sprintf("ignoring %s: instrumented builds choose the build profile themselves", arg))

		case arg == flagMessageFormat:
			if i+1 < len(args) {
				i++
				log.Warn(fmt.Sprintf("ignoring %s %s: the build event stream is always JSON", arg, args[i]))
			} else {
				log.Warn(fmt.Sprintf("ignoring %s: the build event stream is always JSON", arg))
			}

		case strings.HasPrefix(arg, flagMessageFormat+"="):
			log.Warn(fmt.Sprintf("ignoring %s: the build event stream is always JSON", arg))

		case arg == flagTarget:
			out.HasTarget = true
			out.Args = append(out.Args, arg)
			if i+1 < len(args) {
				i++
				out.Args = append(out.Args, args[i])
			}

		case strings.HasPrefix(arg, flagTarget+"="):
			out.HasTarget = true
			out.Args = append(out.Args, arg)

		default:
			out.Args = append(out.Args, arg)
		}
	}

	return out
}
