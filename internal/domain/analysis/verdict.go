package analysis

import "strings"

// ClassifyVerdict maps a free-form provider label onto the three-way enum.
// Substring match, checked in fixed order; anything without a strong signal stays
// Suspicious so an ambiguous label can never present as trustworthy.
func ClassifyVerdict(raw string) Verdict {
	label := strings.ToLower(raw)
	if strings.Contains(label, "genuine") || strings.Contains(label, "safe") {
		return VerdictGenuine
	}
	if strings.Contains(label, "fake") || strings.Contains(label, "scam") || strings.Contains(label, "danger") {
		return VerdictFake
	}
	return VerdictSuspicious
}
