// Package flagx lets the server config and accountctl share one command
// line: each picks out only the flags it owns before parsing them with its
// own FlagSet.
package flagx

import (
	"flag"
	"strings"
)

// FilterArgs returns the subset of args naming a flag in allowedFlags,
// keeping each flag's value alongside it. Order is preserved and the result
// is never nil.
//
// "-d=dsn" carries its own value. "-d dsn" takes the next argument as the
// value unless that argument starts with "-". Scanning stops at "--".
func FilterArgs(args []string, allowedFlags []string) []string {
	owned := make(map[string]bool, len(allowedFlags))
	for _, f := range allowedFlags {
		owned[f] = true
	}

	out := []string{}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		if name, _, inline := strings.Cut(arg, "="); inline {
			if owned[name] {
				out = append(out, arg)
			}
			continue
		}

		if !owned[arg] {
			continue
		}
		out = append(out, arg)
		if next := i + 1; next < len(args) && !strings.HasPrefix(args[next], "-") {
			out = append(out, args[next])
			i = next
		}
	}
	return out
}

// ConfigPath returns the JSON config path given with -c or -config in args,
// or "" when neither is present. The last occurrence wins.
func ConfigPath(args []string) string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "Path to config file")
	fs.StringVar(&path, "c", "", "Path to config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config", "--c", "--config"}))

	return path
}
