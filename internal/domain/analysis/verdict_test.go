package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sakethvvv/verify-your-cart-v1.3/internal/domain/analysis"
)

func TestClassifyVerdict(t *testing.T) {
	cases := []struct {
		name  string
		label string
		want  analysis.Verdict
	}{
		{"exact genuine", "Genuine", analysis.VerdictGenuine},
		{"safe keyword", "looks safe to buy", analysis.VerdictGenuine},
		{"mixed case", "GENUINE product page", analysis.VerdictGenuine},
		{"fake keyword", "Fake", analysis.VerdictFake},
		{"scam keyword", "likely a scam storefront", analysis.VerdictFake},
		{"danger keyword", "dangerous", analysis.VerdictFake},
		{"suspicious passthrough", "Suspicious", analysis.VerdictSuspicious},
		{"empty label", "", analysis.VerdictSuspicious},
		{"unknown label defaults to suspicious", "unverified", analysis.VerdictSuspicious},
		{"numeric noise", "verdict: 7/10", analysis.VerdictSuspicious},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, analysis.ClassifyVerdict(tc.label))
		})
	}
}

// A label carrying both signal groups resolves on the first match group,
// so "genuine" wins over "fake".
func TestClassifyVerdict_GenuineCheckedFirst(t *testing.T) {
	assert.Equal(t, analysis.VerdictGenuine, analysis.ClassifyVerdict("genuine, not fake"))
}
