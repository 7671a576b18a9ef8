package dispatchers

import (
	"errors"
	"strings"
)

// Sentinel results of token resolution. The dispatcher wraps them into
// user-facing diagnostics; nothing else should surface them directly.
var (
	ErrNotFound  = errors.New("no matching command")
	ErrAmbiguous = errors.New("ambiguous abbreviation")
)

// Resolve matches a single token against the group's commands in
// declaration order. An exact name match wins immediately. Otherwise the
// token may abbreviate exactly one command name; if it prefixes two or
// more, the match is ambiguous even when a later entry would have matched
// exactly had it existed. An empty token never matches.
func (g *Group) Resolve(token string) (*Command, error) {
	if token == "" {
		return nil, ErrNotFound
	}

	var abbrev, ambiguous *Command

	for _, cmd := range g.Commands {
		if cmd.Token == token {
			return cmd, nil
		}
		if strings.HasPrefix(cmd.Token, token) {
			if abbrev != nil {
				// A second abbreviation candidate. Keep the first
				// as the ambiguity marker; only a later exact match
				// can still rescue the lookup.
				ambiguous = abbrev
			}
			abbrev = cmd
		}
	}

	if ambiguous != nil {
		return nil, ErrAmbiguous
	}
	if abbrev != nil {
		return abbrev, nil
	}
	return nil, ErrNotFound
}

// Candidates returns, in declaration order, the command tokens the given
// prefix abbreviates. Used for ambiguity diagnostics.
func (g *Group) Candidates(prefix string) []string {
	var out []string
	for _, cmd := range g.Commands {
		if strings.HasPrefix(cmd.Token, prefix) {
			out = append(out, cmd.Token)
		}
	}
	return out
}
