package extract

import (
	"regexp"
	"strings"
)

// Matcher recognizes one field kind on a single (trimmed) line of text.
// It returns the normalized matched value, or "" for no match. Matchers are
// pure functions; they never fail.
type Matcher func(line string) string

var (
	// local-part @ domain; the domain may contain whitespace gaps where the
	// OCR pass dropped dots ("jane@acme com").
	reEmail = regexp.MustCompile(`(?i)([a-z0-9._%+\-]+)@([a-z0-9.\-]+(?:\s+[a-z0-9.\-]+)*)`)
	// top-level suffix of 2+ letters, checked after the domain is rebuilt
	reEmailTLD = regexp.MustCompile(`(?i)\.[a-z]{2,}$`)

	// optional +CC prefix, optional parenthesized area code, 3-3-4 grouping
	rePhone    = regexp.MustCompile(`(?:\+\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	reNonPhone = regexp.MustCompile(`[^0-9+]`)

	// words.tld with an optional second-level suffix; matched on the
	// lowercased line
	reWebsite = regexp.MustCompile(`(?:www\.)?[a-z0-9][a-z0-9\-]+\.[a-z]{2,}(?:\.[a-z]{2,})?`)

	// leading street number, word tokens, known street-type terminator.
	// The suffix token is deliberately case-sensitive.
	reAddress = regexp.MustCompile(`\d+\s+[A-Za-z\s,]+(?:Street|St|Avenue|Ave|Road|Rd|Boulevard|Blvd|Lane|Ln|Drive|Dr)\b`)
)

// maxDomainGaps bounds how many whitespace gaps a healed domain may span;
// anything beyond that is following text, not a broken domain.
const maxDomainGaps = 2

// MatchEmail matches an email token and rebuilds it as local@domain. A
// whitespace gap inside the domain is healed into a dot ("jane@acme com"),
// but the rebuild stops as soon as the domain ends in a valid top-level
// suffix so text after the email is never absorbed into it.
func MatchEmail(line string) string {
	m := reEmail.FindStringSubmatch(line)
	if m == nil {
		return ""
	}
	domain := ""
	for i, tok := range strings.Fields(m[2]) {
		if i > maxDomainGaps {
			break
		}
		if domain == "" {
			domain = strings.Trim(tok, ".")
		} else {
			domain += "." + strings.Trim(tok, ".")
		}
		if reEmailTLD.MatchString(domain) {
			return m[1] + "@" + domain
		}
	}
	return ""
}

// MatchPhone matches a phone number and strips it to digits plus a leading +.
func MatchPhone(line string) string {
	m := rePhone.FindString(line)
	if m == "" {
		return ""
	}
	return reNonPhone.ReplaceAllString(m, "")
}

// MatchWebsite matches a bare domain and forces a canonical www. prefix.
// Lines containing "@" are never websites; email wins that tie-break.
func MatchWebsite(line string) string {
	if strings.Contains(line, "@") {
		return ""
	}
	m := reWebsite.FindString(strings.ToLower(line))
	if m == "" {
		return ""
	}
	if !strings.HasPrefix(m, "www.") {
		return "www." + m
	}
	return m
}

// MatchAddress matches a street address span. No normalization beyond the
// exact matched text.
func MatchAddress(line string) string {
	return reAddress.FindString(line)
}
