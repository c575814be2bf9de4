// Package cliargs splits raw command line tokens into tags, key/value
// constraints and positional arguments.
//
// The token grammar is:
//
//	-tag          select tests that have "tag"
//	--key=value   select tests whose "key" equals "value"
//	--key value   same, with the value in the next token
//	anything      a positional argument (usually a manifest path)
//
// A bare "--" names no key and is ignored.
// A token starting with three dashes is rejected, as is a key that is still
// waiting for its value when another flag or the end of input is reached.
package cliargs

import (
	"strings"

	"github.com/arthur-debert/manifestdestiny/pkg/errors"
	"github.com/arthur-debert/manifestdestiny/pkg/types"
)

// Args is the result of Parse.
type Args struct {
	Constraints types.Constraints
	Tags        []string
	Positional  []string
}

// Parse splits args. Later values for the same key replace earlier ones.
func Parse(args []string) (Args, error) {
	var out Args
	key := ""
	open := false

	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, "---"):
			return Args{}, errors.New(errors.ErrArgument, "arguments should start with '-' or '--' only").
				WithDetail("arg", arg)

		case arg == "--":
			if open {
				return Args{}, stillOpen(key)
			}

		case strings.HasPrefix(arg, "--"):
			if open {
				return Args{}, stillOpen(key)
			}
			name := arg[2:]
			if k, v, ok := strings.Cut(name, "="); ok {
				out.Constraints = out.Constraints.Set(k, v)
				continue
			}
			key, open = name, true

		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			if open {
				return Args{}, stillOpen(key)
			}
			out.Tags = append(out.Tags, arg[1:])

		default:
			if open {
				out.Constraints = out.Constraints.Set(key, arg)
				key, open = "", false
				continue
			}
			out.Positional = append(out.Positional, arg)
		}
	}

	if open {
		return Args{}, stillOpen(key)
	}
	return out, nil
}

func stillOpen(key string) error {
	return errors.Newf(errors.ErrArgument, "key %s still open", key).WithDetail("key", key)
}
