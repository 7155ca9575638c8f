package help

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// TypeUnknown is the sentinel used when no stored type label matches a
// hint. It flows through filtering as a normal value and matches no record
// unless a record's type is literally "unknown".
const TypeUnknown = "unknown"

// matchThreshold is the minimum token-sort ratio (0-100 scale) a
// vocabulary label must exceed for a hint to resolve to it.
const matchThreshold = 60

// matchServiceType resolves a free-text hint against the live type
// vocabulary using token-order-insensitive string similarity. The
// vocabulary is re-fetched by the caller on every request, so resolution
// quality tracks the data. Ties keep the first label in vocabulary order.
func matchServiceType(hint string, vocabulary []string) string {
	hint = strings.ToLower(strings.TrimSpace(hint))
	if hint == "" || len(vocabulary) == 0 {
		return TypeUnknown
	}

	best := TypeUnknown
	bestScore := 0
	for _, label := range vocabulary {
		score := fuzzy.TokenSortRatio(hint, label)
		if score > bestScore {
			best = label
			bestScore = score
		}
	}
	if bestScore <= matchThreshold {
		return TypeUnknown
	}
	return best
}
