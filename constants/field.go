package constants

import (
	"strings"
)

// FieldKind names one semantic slot of a contact record.
type FieldKind string

const (
	FullName      FieldKind = "full_name"
	Organization  FieldKind = "organization"
	JobTitle      FieldKind = "job_title"
	ContactNumber FieldKind = "contact_number"
	BusinessEmail FieldKind = "business_email"
	BusinessURL   FieldKind = "business_url"
	StreetAddress FieldKind = "street_address"
	LocationCity  FieldKind = "location_city"
	LocationState FieldKind = "location_state"
	PostalCode    FieldKind = "postal_code"
)

var allFieldKinds = []FieldKind{
	FullName,
	Organization,
	JobTitle,
	ContactNumber,
	BusinessEmail,
	BusinessURL,
	StreetAddress,
	LocationCity,
	LocationState,
	PostalCode,
}

// MatcherPriority is the tie-break order in which pattern matchers are tried
// on a line. Email before website so "jane@acme.com" is never taken as a URL;
// phone before address so digit runs are never re-read as street numbers.
var MatcherPriority = []FieldKind{
	BusinessEmail,
	ContactNumber,
	BusinessURL,
	StreetAddress,
}

func FieldKindStrings() []string {
	result := make([]string, len(allFieldKinds))
	for i, k := range allFieldKinds {
		result[i] = string(k)
	}
	return result
}

// CanonicalizeField maps a loose field label (e.g. "Email", "phone") to its
// FieldKind. Used when applying partial updates coming from the review form.
func CanonicalizeField(input string) (FieldKind, bool) {
	if input == "" {
		return "", false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// labels the review UI historically used
	synonyms := map[string]FieldKind{
		"name":        FullName,
		"title":       JobTitle,
		"phone":       ContactNumber,
		"email":       BusinessEmail,
		"website":     BusinessURL,
		"url":         BusinessURL,
		"address":     StreetAddress,
		"city":        LocationCity,
		"state":       LocationState,
		"postal code": PostalCode,
		"zip":         PostalCode,
	}

	if k, ok := synonyms[normalized]; ok {
		return k, true
	}

	for _, k := range allFieldKinds {
		if normalized == string(k) {
			return k, true
		}
	}

	return "", false
}
