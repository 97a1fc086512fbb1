package cli

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Suggest returns the candidate closest to input, or "" when nothing is
// close enough to be a plausible typo.
func Suggest(input string, candidates []string) string {
	needle := strings.ToLower(input)
	limit := max(2, len(needle)/3)

	best, bestDist := "", limit+1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(needle, strings.ToLower(c))
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// DidYouMean formats a suggestion line, or returns "" when there is none
func DidYouMean(input string, candidates []string) string {
	s := Suggest(input, candidates)
	if s == "" {
		return ""
	}
	return fmt.Sprintf("did you mean %q?", s)
}
