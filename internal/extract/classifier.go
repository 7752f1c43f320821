package extract

import (
	"github.com/cardkeep/cardkeep/constants"
)

// Classification pairs a matched field kind with its normalized value.
type Classification struct {
	Kind  constants.FieldKind
	Value string
}

// matcherFor binds each classifiable field kind to its matcher. Only kinds
// listed in constants.MatcherPriority are ever consulted; organization,
// city, state and postal code have no matcher and stay manual-entry-only.
var matcherFor = map[constants.FieldKind]Matcher{
	constants.BusinessEmail: MatchEmail,
	constants.ContactNumber: MatchPhone,
	constants.BusinessURL:   MatchWebsite,
	constants.StreetAddress: MatchAddress,
}

// ClassifyLine runs the matchers over one trimmed, non-empty line in
// constants.MatcherPriority order and returns the first hit. ok is false
// when no matcher claimed the line.
func ClassifyLine(line string) (Classification, bool) {
	for _, kind := range constants.MatcherPriority {
		if v := matcherFor[kind](line); v != "" {
			return Classification{Kind: kind, Value: v}, true
		}
	}
	return Classification{}, false
}
