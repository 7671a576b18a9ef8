package dispatchers

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

const maxSuggestDistance = 3

type suggestion struct {
	token    string
	distance int
}

// SuggestTokens ranks the group's command tokens by edit distance to the
// input and returns up to maxResults close misses for did-you-mean
// diagnostics.
func SuggestTokens(input string, grp *Group, maxResults int) []string {
	if grp == nil || len(grp.Commands) == 0 {
		return nil
	}

	lower := strings.ToLower(input)

	var candidates []suggestion
	for _, cmd := range grp.Commands {
		dist := levenshtein.ComputeDistance(lower, strings.ToLower(cmd.Token))
		if dist > 0 && dist <= maxSuggestDistance {
			candidates = append(candidates, suggestion{token: cmd.Token, distance: dist})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].distance != candidates[j].distance {
			return candidates[i].distance < candidates[j].distance
		}
		return candidates[i].token < candidates[j].token
	})

	if len(candidates) > maxResults {
		candidates = candidates[:maxResults]
	}

	out := make([]string, len(candidates))
	for i, s := range candidates {
		out[i] = s.token
	}
	return out
}
