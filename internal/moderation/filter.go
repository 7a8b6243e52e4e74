package moderation

import "strings"

// badwords is the static blocklist applied to review bodies. Matching is by
// whole whitespace-delimited token, lowercased; words with attached
// punctuation are not caught. That is the documented contract.
var badwords = map[string]struct{}{
	"ass":      {},
	"asshole":  {},
	"bastard":  {},
	"bitch":    {},
	"bullshit": {},
	"crap":     {},
	"damn":     {},
	"dick":     {},
	"douche":   {},
	"dumbass":  {},
	"fuck":     {},
	"fucking":  {},
	"hell":     {},
	"jackass":  {},
	"piss":     {},
	"prick":    {},
	"shit":     {},
	"shitty":   {},
	"slut":     {},
	"whore":    {},
}

// Filter removes every token whose lowercase form appears in the blocklist
// and joins the survivors with single spaces. Original spacing and the
// punctuation context around removed words are not preserved.
func Filter(text string) string {
	tokens := strings.Fields(text)
	kept := tokens[:0]
	for _, tok := range tokens {
		if _, bad := badwords[strings.ToLower(tok)]; bad {
			continue
		}
		kept = append(kept, tok)
	}
	return strings.Join(kept, " ")
}

// IsBlocked reports whether a single token is on the blocklist.
func IsBlocked(word string) bool {
	_, bad := badwords[strings.ToLower(word)]
	return bad
}
