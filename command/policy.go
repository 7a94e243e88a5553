package command

import "strings"

// cacheableVerbs is the allow-list of read-only verbs. A command is
// cacheable iff one of its first two tokens is a listed verb, covering
// both verb-first ("list networks") and noun-first ("accounts list")
// CLI shapes. Anything unmatched is treated as non-cacheable:
// state-mutating operations (account creation, transfers, deployments)
// must never be served from a cache.
var cacheableVerbs = map[string]bool{
	"query":     true,
	"list":      true,
	"show":      true,
	"get":       true,
	"status":    true,
	"balances":  true,
	"fees":      true,
	"help":      true,
	"version":   true,
	"--help":    true,
	"--version": true,
}

// IsCacheable reports whether a command with the given text is safe to
// cache. Matching is deliberately simple token matching: the command
// vocabulary is fixed at call sites.
func IsCacheable(text string) bool {
	tokens := strings.Fields(text)
	for i, tok := range tokens {
		if i > 1 {
			break
		}
		if cacheableVerbs[strings.ToLower(tok)] {
			return true
		}
	}
	return false
}
