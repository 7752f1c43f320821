package extract

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestExtract_FullCard(t *testing.T) {
	lines := []string{
		"John Smith",
		"Senior Engineer",
		"john.smith@acme.com",
		"+1 415-555-0199",
		"www.acme.com",
		"123 Main Street",
	}

	got := Extract(lines)

	want := ContactFields{
		FullName:      "John Smith",
		JobTitle:      "Senior Engineer",
		BusinessEmail: "john.smith@acme.com",
		ContactNumber: "+14155550199",
		BusinessURL:   "www.acme.com",
		StreetAddress: "123 Main Street",
		RawText:       strings.Join(lines, "\n"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Extract() = %+v, want %+v", got, want)
	}
	if got.Organization != "" {
		t.Errorf("organization must never be populated by the pipeline, got %q", got.Organization)
	}
}

func TestExtract_NumericFirstLineIsNotAName(t *testing.T) {
	got := Extract([]string{"123 Elm Street", "www.foo.com"})

	if got.FullName != "" {
		t.Errorf("full_name = %q, want empty (first line is numeric)", got.FullName)
	}
	if got.StreetAddress != "123 Elm Street" {
		t.Errorf("street_address = %q, want %q", got.StreetAddress, "123 Elm Street")
	}
	if got.BusinessURL != "www.foo.com" {
		t.Errorf("business_url = %q, want %q", got.BusinessURL, "www.foo.com")
	}
}

func TestExtract_FirstMatchWins(t *testing.T) {
	got := Extract([]string{"415-555-0100", "415-555-0200"})
	if got.ContactNumber != "4155550100" {
		t.Errorf("contact_number = %q, want the earlier line's value", got.ContactNumber)
	}

	got = Extract([]string{"a@b.com", "c@d.com"})
	if got.BusinessEmail != "a@b.com" {
		t.Errorf("business_email = %q, want the earlier line's value", got.BusinessEmail)
	}
}

func TestExtract_PositionalUsesAbsoluteIndex(t *testing.T) {
	// The first line is consumed by the email pre-pass, but it still holds
	// index 0; the plain-text name on line two sits at index 1 and must not
	// land in full_name.
	got := Extract([]string{"jane@acme.com", "Jane Doe"})

	if got.FullName != "" {
		t.Errorf("full_name = %q, want empty (name is not on the first line)", got.FullName)
	}
	if got.BusinessEmail != "jane@acme.com" {
		t.Errorf("business_email = %q, want %q", got.BusinessEmail, "jane@acme.com")
	}
	// index 1 is the title heuristic, so the name lands there instead
	if got.JobTitle != "Jane Doe" {
		t.Errorf("job_title = %q, want %q", got.JobTitle, "Jane Doe")
	}
}

func TestExtract_BlankLinesDoNotConsumeIndices(t *testing.T) {
	got := Extract([]string{"", "  ", "Jane Doe", "Staff Engineer"})

	if got.FullName != "Jane Doe" {
		t.Errorf("full_name = %q, want %q", got.FullName, "Jane Doe")
	}
	if got.JobTitle != "Staff Engineer" {
		t.Errorf("job_title = %q, want %q", got.JobTitle, "Staff Engineer")
	}
}

func TestExtract_TitleGuardRejectsDomains(t *testing.T) {
	// a malformed website that beat the matchers must not become a title
	got := Extract([]string{"Jane Doe", "see acme.com online"})

	if got.JobTitle != "" && strings.Contains(got.JobTitle, ".com") {
		t.Errorf("job_title = %q, domain suffix must be rejected", got.JobTitle)
	}
}

func TestExtract_EmailBeatsWebsite(t *testing.T) {
	got := Extract([]string{"jane@example.com"})
	if got.BusinessEmail != "jane@example.com" {
		t.Errorf("business_email = %q, want %q", got.BusinessEmail, "jane@example.com")
	}
	if got.BusinessURL != "" {
		t.Errorf("business_url = %q, want empty (email priority)", got.BusinessURL)
	}
}

func TestExtract_EmptyInput(t *testing.T) {
	got := Extract(nil)
	if !got.IsEmpty() {
		t.Fatalf("Extract(nil) = %+v, want all-empty record", got)
	}
	if got.RawText != "" {
		t.Errorf("raw_text = %q, want empty", got.RawText)
	}
}

func TestExtract_Idempotent(t *testing.T) {
	lines := []string{"John Smith", "CTO", "john@acme.com", "415-555-0199"}
	first := Extract(lines)
	second := Extract(lines)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("Extract is not idempotent: %+v vs %+v", first, second)
	}
}

func TestExtract_ResultValidatesAgainstSchema(t *testing.T) {
	records := [][]string{
		{"John Smith", "Senior Engineer", "john.smith@acme.com", "+1 415-555-0199", "www.acme.com", "123 Main Street"},
		{"123 Elm Street", "www.foo.com"},
		{},
	}
	schema := BuildContactJSONSchema()
	for _, lines := range records {
		fields := Extract(lines)
		b, err := json.Marshal(fields)
		if err != nil {
			t.Fatalf("marshal fields: %v", err)
		}
		if err := ValidateJSONAgainstSchema(schema, b); err != nil {
			t.Errorf("record for %v does not validate: %v", lines, err)
		}
	}
}
