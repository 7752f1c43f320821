package extract

import "testing"

func TestMatchEmail(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "jane@example.com", want: "jane@example.com"},
		{name: "dotted local part", in: "john.smith@acme.com", want: "john.smith@acme.com"},
		{name: "embedded in line", in: "Email: jane@acme.com", want: "jane@acme.com"},
		{name: "ocr gap in domain collapses to dot", in: "jane@acme com", want: "jane@acme.com"},
		{name: "trailing period stripped", in: "jane@acme.com.", want: "jane@acme.com"},
		{name: "text after email not absorbed", in: "Call jane@acme.com for info", want: "jane@acme.com"},
		{name: "title after email not absorbed", in: "jane@acme.com Senior Developer", want: "jane@acme.com"},
		{name: "website after email not absorbed", in: "jane@acme.com www.acme.com", want: "jane@acme.com"},
		{name: "plus tag", in: "jane+cards@acme.io", want: "jane+cards@acme.io"},
		{name: "single letter tld rejected", in: "jane@acme.c", want: ""},
		{name: "no at sign", in: "www.acme.com", want: ""},
		{name: "plain name", in: "Jane Doe", want: ""},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchEmail(tt.in); got != tt.want {
				t.Fatalf("MatchEmail(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMatchPhone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "international with separators", in: "+1 415-555-0199", want: "+14155550199"},
		{name: "parenthesized area code", in: "(415) 555-0199", want: "4155550199"},
		{name: "dots", in: "415.555.0199", want: "4155550199"},
		{name: "bare digits", in: "4155550199", want: "4155550199"},
		{name: "two digit country code", in: "+44 202 555 0123", want: "+442025550123"},
		{name: "labelled", in: "Tel: 415-555-0199", want: "4155550199"},
		{name: "too short", in: "415-55", want: ""},
		{name: "street number alone is not a phone", in: "123 Main Street", want: ""},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchPhone(tt.in); got != tt.want {
				t.Fatalf("MatchPhone(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMatchWebsite(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "with www", in: "www.acme.com", want: "www.acme.com"},
		{name: "bare domain gets www prefix", in: "acme.com", want: "www.acme.com"},
		{name: "second level suffix", in: "acme.co.uk", want: "www.acme.co.uk"},
		{name: "uppercase is lowered", in: "WWW.ACME.COM", want: "www.acme.com"},
		{name: "email line is never a website", in: "jane@acme.com", want: ""},
		{name: "plain text", in: "Senior Engineer", want: ""},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchWebsite(tt.in); got != tt.want {
				t.Fatalf("MatchWebsite(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMatchAddress(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "street", in: "123 Main Street", want: "123 Main Street"},
		{name: "abbreviated", in: "42 Oak Ave", want: "42 Oak Ave"},
		{name: "boulevard", in: "900 Sunset Boulevard", want: "900 Sunset Boulevard"},
		{name: "multi word", in: "77 Harbor View Dr", want: "77 Harbor View Dr"},
		{name: "suffix is case sensitive", in: "123 Main STREET", want: ""},
		{name: "no leading number", in: "Main Street", want: ""},
		{name: "no street token", in: "123 Main", want: ""},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchAddress(tt.in); got != tt.want {
				t.Fatalf("MatchAddress(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
