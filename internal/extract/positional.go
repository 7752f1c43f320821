package extract

import (
	"strings"
	"unicode"
)

// Card layouts conventionally put the person's name on the first line and
// the job title on the second. These domain suffixes guard the title slot
// against a website that slipped past the pattern matchers.
var titleBlockedSuffixes = []string{".com", ".org", ".net"}

// assignPositional places a line no matcher claimed, by its absolute
// position among the card's non-blank lines. Index 0 is a full-name
// candidate (rejected if it contains any digit), index 1 a job-title
// candidate. Each heuristic fires at most once; later lines are ignored.
func assignPositional(fields *ContactFields, idx int, line string) {
	switch idx {
	case 0:
		if fields.FullName == "" && !containsDigit(line) {
			fields.FullName = line
		}
	case 1:
		if fields.JobTitle == "" && !containsBlockedSuffix(line) {
			fields.JobTitle = line
		}
	}
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func containsBlockedSuffix(s string) bool {
	lower := strings.ToLower(s)
	for _, suffix := range titleBlockedSuffixes {
		if strings.Contains(lower, suffix) {
			return true
		}
	}
	return false
}
