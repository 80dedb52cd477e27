// Package flagx lets several loaders share os.Args: each one filters out the
// flags it owns before handing them to its own flag.FlagSet.
package flagx

import (
	"flag"
	"strings"
)

// FilterArgs returns the arguments that belong to the given flags.
//
// Supported formats:
//  1. Flag and value as separate arguments:  -d worklog.db
//  2. Flag and value combined with '=':      -config=conf.json
//  3. Boolean switches listed in switches:   -nocolor
//
// A valued flag takes the next argument as its value whatever it looks like,
// as flag.FlagSet does, so "-l -" works. Switches never consume the next
// argument.
func FilterArgs(args []string, valued []string, switches ...string) []string {
	known := make(map[string]bool, len(valued)+len(switches))
	for _, f := range valued {
		known[f] = true
	}
	for _, f := range switches {
		known[f] = false
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := known[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		takesValue, ok := known[arg]
		if !ok {
			continue
		}
		filtered = append(filtered, arg)
		if takesValue && i+1 < len(args) {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// JsonConfigFlags extracts the config file path given via -c or -config.
// The last occurrence wins; an empty string means no file was requested.
func JsonConfigFlags(args []string) string {
	var config string

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&config, "config", "", "Path to config file")
	fs.StringVar(&config, "c", "", "Path to config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config"}))

	return config
}
