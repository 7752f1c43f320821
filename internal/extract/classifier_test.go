package extract

import (
	"testing"

	"github.com/cardkeep/cardkeep/constants"
)

func TestMatcherPriorityOrder(t *testing.T) {
	want := []constants.FieldKind{
		constants.BusinessEmail,
		constants.ContactNumber,
		constants.BusinessURL,
		constants.StreetAddress,
	}
	if len(constants.MatcherPriority) != len(want) {
		t.Fatalf("priority list has %d entries, want %d", len(constants.MatcherPriority), len(want))
	}
	for i, kind := range want {
		if constants.MatcherPriority[i] != kind {
			t.Errorf("priority[%d] = %s, want %s", i, constants.MatcherPriority[i], kind)
		}
	}
	for _, kind := range constants.MatcherPriority {
		if matcherFor[kind] == nil {
			t.Errorf("no matcher bound for %s", kind)
		}
	}
}

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantKind constants.FieldKind
		wantVal  string
		wantOK   bool
	}{
		{
			name:     "email beats website on the same line",
			in:       "jane@example.com",
			wantKind: constants.BusinessEmail,
			wantVal:  "jane@example.com",
			wantOK:   true,
		},
		{
			name:     "phone",
			in:       "+1 415-555-0199",
			wantKind: constants.ContactNumber,
			wantVal:  "+14155550199",
			wantOK:   true,
		},
		{
			name:     "website",
			in:       "acme.com",
			wantKind: constants.BusinessURL,
			wantVal:  "www.acme.com",
			wantOK:   true,
		},
		{
			name:     "address",
			in:       "123 Main Street",
			wantKind: constants.StreetAddress,
			wantVal:  "123 Main Street",
			wantOK:   true,
		},
		{
			name:   "plain text is unclassified",
			in:     "Senior Engineer",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := ClassifyLine(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("ClassifyLine(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if c.Kind != tt.wantKind || c.Value != tt.wantVal {
				t.Fatalf("ClassifyLine(%q) = {%s %q}, want {%s %q}",
					tt.in, c.Kind, c.Value, tt.wantKind, tt.wantVal)
			}
		})
	}
}
