package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/sakethvvv/verify-your-cart-v1.3/internal/domain/analysis"
)

const sampleJSON = `{
  "trust_score": 81,
  "verdict": "Genuine",
  "reasons": ["established retailer", "https everywhere"],
  "advice": "Safe to buy.",
  "breakdown": {
    "reviews": ["many verified reviews"],
    "sentiment": ["mostly positive"],
    "price": ["in line with market"],
    "seller": ["registered company"],
    "description": ["detailed and consistent"]
  },
  "sources": ["https://example.com/report"]
}`

func TestNormalize_FenceRoundTrip(t *testing.T) {
	plain, err := normalize(sampleJSON)
	require.NoError(t, err)

	wrapped := "Here is the assessment you asked for:\n```json\n" + sampleJSON + "\n```\nLet me know if you need anything else."
	fenced, err := normalize(wrapped)
	require.NoError(t, err)

	assert.Equal(t, plain, fenced)
}

func TestNormalize_BareFenceWithoutTag(t *testing.T) {
	fenced, err := normalize("```\n" + sampleJSON + "\n```")
	require.NoError(t, err)
	require.NotNil(t, fenced.TrustScore)
	assert.Equal(t, 81, *fenced.TrustScore)
}

func TestNormalize_LeadingAndTrailingProse(t *testing.T) {
	p, err := normalize("Sure! " + sampleJSON + " Hope that helps.")
	require.NoError(t, err)
	assert.Equal(t, "Genuine", p.Verdict)
}

func TestNormalize_NoJSONObject(t *testing.T) {
	for _, raw := range []string{"", "no braces here", "```\nplain text\n```", "only } closes"} {
		_, err := normalize(raw)
		assert.ErrorIs(t, err, ErrParse, "input %q", raw)
	}
}

func TestNormalize_MalformedJSON(t *testing.T) {
	_, err := normalize(`{"trust_score": not-a-number}`)
	assert.ErrorIs(t, err, ErrParse)
}

func TestFormatResult_Defaults(t *testing.T) {
	req := domain.NewRequest("https://unknown-shop.example/item")
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	res := formatResult(req, providerPayload{}, nil, now)

	assert.Equal(t, 0, res.TrustScore)
	assert.Equal(t, domain.VerdictSuspicious, res.Verdict)
	assert.Equal(t, []string{defaultReason}, res.Reasons)
	assert.Equal(t, defaultAdvice, res.Advice)
	for _, slot := range [][]string{
		res.Breakdown.Reviews,
		res.Breakdown.Sentiment,
		res.Breakdown.Price,
		res.Breakdown.Seller,
		res.Breakdown.Description,
	} {
		assert.Equal(t, []string{defaultBreakdown}, slot)
	}
	assert.Empty(t, res.Sources)
	assert.Equal(t, req.URL, res.URL)
	assert.Equal(t, now, res.Timestamp)
}

func TestFormatResult_ScoreClamped(t *testing.T) {
	req := domain.NewRequest("https://shop.example")
	for score, want := range map[int]int{-5: 0, 0: 0, 50: 50, 100: 100, 140: 100} {
		p := providerPayload{TrustScore: &score}
		res := formatResult(req, p, nil, time.Now())
		assert.Equal(t, want, res.TrustScore)
	}
}

func TestFormatResult_BlankEntriesDropped(t *testing.T) {
	req := domain.NewRequest("https://shop.example")
	p := providerPayload{Reasons: []string{"  ", "", "real reason"}}
	res := formatResult(req, p, nil, time.Now())
	assert.Equal(t, []string{"real reason"}, res.Reasons)
}

func TestFormatResult_VerdictNeverVerbatim(t *testing.T) {
	req := domain.NewRequest("https://shop.example")
	p := providerPayload{Verdict: "Probably Fine"}
	res := formatResult(req, p, nil, time.Now())
	assert.Equal(t, domain.VerdictSuspicious, res.Verdict)
}

func TestMergeSources_CitationsFirstCappedAt4(t *testing.T) {
	citations := []string{"https://a.example", "https://b.example"}
	declared := []string{"https://b.example", "https://c.example", "https://d.example", "https://e.example"}

	got := mergeSources(citations, declared)

	assert.Equal(t, []string{"https://a.example", "https://b.example", "https://c.example", "https://d.example"}, got)
	assert.Len(t, got, domain.MaxSources)
}
