package command

import "strings"

// RedactedPlaceholder replaces secret argument values in log and error text.
const RedactedPlaceholder = "[REDACTED]"

// secretFlags lists CLI flags whose values must never be echoed back in
// log or error output.
var secretFlags = map[string]bool{
	"--private-key": true,
	"--mnemonic":    true,
	"--password":    true,
	"--token":       true,
	"--api-key":     true,
	"--secret":      true,
}

// Redact returns a copy of args with the values of secret-bearing flags
// masked. Both "--flag value" and "--flag=value" forms are handled. The
// input slice is never modified.
func Redact(args []string) []string {
	out := make([]string, len(args))
	maskNext := false
	for i, arg := range args {
		switch {
		case maskNext:
			out[i] = RedactedPlaceholder
			maskNext = false
		case secretFlags[strings.ToLower(arg)]:
			out[i] = arg
			maskNext = true
		default:
			if flag, _, ok := strings.Cut(arg, "="); ok && secretFlags[strings.ToLower(flag)] {
				out[i] = flag + "=" + RedactedPlaceholder
			} else {
				out[i] = arg
			}
		}
	}
	return out
}
