package extract

import (
	"strings"

	"github.com/cardkeep/cardkeep/constants"
)

// Extract drives the full pipeline over the ordered OCR line sequence and
// assembles one ContactFields record. It cannot fail: any input, including
// an empty sequence, yields a (possibly all-empty) record, and the same
// input always yields the same record.
//
// This is the canonical rule set: an email-only pre-pass fixes the email
// slot first, then the main pass classifies the remaining lines with
// first-match-wins per slot, then the positional heuristics place whatever
// the matchers left over.
func Extract(lines []string) ContactFields {
	var fields ContactFields

	// Pre-pass: fix the email ahead of general classification so the email
	// line is never reconsidered by the website matcher or the heuristics.
	for _, raw := range lines {
		if email := MatchEmail(strings.TrimSpace(raw)); email != "" {
			fields.BusinessEmail = email
			break
		}
	}

	pos := -1
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			// blank lines never consume a position index
			continue
		}
		pos++

		if line == fields.BusinessEmail {
			continue
		}

		if c, ok := ClassifyLine(line); ok {
			setField(&fields, c)
			continue
		}

		assignPositional(&fields, pos, line)
	}

	fields.RawText = strings.Join(lines, "\n")
	return fields
}

// setField writes a classification into its slot only if the slot is still
// empty; a field filled by an earlier line is never overwritten.
func setField(fields *ContactFields, c Classification) {
	var slot *string
	switch c.Kind {
	case constants.BusinessEmail:
		slot = &fields.BusinessEmail
	case constants.ContactNumber:
		slot = &fields.ContactNumber
	case constants.BusinessURL:
		slot = &fields.BusinessURL
	case constants.StreetAddress:
		slot = &fields.StreetAddress
	default:
		return
	}
	if *slot == "" {
		*slot = c.Value
	}
}
