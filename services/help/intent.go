package help

import "strings"

// serviceLexicon is scanned in order; the first entry present among the
// query tokens wins, regardless of where it appears in the text.
var serviceLexicon = []string{"ambulance", "doctor", "hospital", "medical", "clinic", "nurse"}

// fillerWords are removed as raw substrings from the location candidate,
// not as whole tokens.
var fillerWords = []string{"need", "help"}

// extractIntent pulls a service keyword and a candidate place name out of
// raw query text. The matched keyword token is dropped, the fillers are
// stripped, and whatever text remains is treated as a possible location
// mention. Empty input yields empty outputs.
func extractIntent(text string) (location, serviceHint string) {
	words := strings.Fields(strings.ToLower(text))

	for _, keyword := range serviceLexicon {
		for _, w := range words {
			if w == keyword {
				serviceHint = keyword
				break
			}
		}
		if serviceHint != "" {
			break
		}
	}

	if serviceHint != "" {
		kept := words[:0]
		for _, w := range words {
			if w != serviceHint {
				kept = append(kept, w)
			}
		}
		words = kept
	}

	location = strings.Join(words, " ")
	for _, filler := range fillerWords {
		location = strings.ReplaceAll(location, filler, "")
	}
	return strings.Join(strings.Fields(location), " "), serviceHint
}
