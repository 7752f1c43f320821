// Package extract turns an ordered sequence of OCR text lines from a
// photographed business card into a structured contact record.
//
// The pipeline is strictly line-local: each line is classified by pattern
// matchers in a fixed priority order, leftover lines fall through to
// positional heuristics (first line = name, second = title). No geometry,
// no NER, no fuzzy matching.
package extract

// ContactFields holds the ten record slots plus the raw OCR text.
// Every slot is optional; absence of a match is an empty string.
type ContactFields struct {
	FullName      string `json:"full_name"`
	Organization  string `json:"organization"`
	JobTitle      string `json:"job_title"`
	ContactNumber string `json:"contact_number"`
	BusinessEmail string `json:"business_email"`
	BusinessURL   string `json:"business_url"`
	StreetAddress string `json:"street_address"`
	LocationCity  string `json:"location_city"`
	LocationState string `json:"location_state"`
	PostalCode    string `json:"postal_code"`
	RawText       string `json:"raw_text"`
}

// IsEmpty reports whether no slot was populated at all.
func (f ContactFields) IsEmpty() bool {
	return f.FullName == "" && f.Organization == "" && f.JobTitle == "" &&
		f.ContactNumber == "" && f.BusinessEmail == "" && f.BusinessURL == "" &&
		f.StreetAddress == "" && f.LocationCity == "" && f.LocationState == "" &&
		f.PostalCode == ""
}
