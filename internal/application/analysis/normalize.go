package analysis

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	domain "github.com/sakethvvv/verify-your-cart-v1.3/internal/domain/analysis"
)

// ErrParse indicates no JSON object could be located or parsed in provider output.
// Callers treat it as a tier failure; it never reaches the HTTP layer.
var ErrParse = errors.New("unparseable provider response")

// providerPayload is the loosely-typed record parsed out of provider text.
// Every field is optional here; formatResult owns all defaulting so nothing
// downstream ever sees a missing field.
type providerPayload struct {
	TrustScore *int     `json:"trust_score"`
	Verdict    string   `json:"verdict"`
	Reasons    []string `json:"reasons"`
	Advice     string   `json:"advice"`
	Breakdown  struct {
		Reviews     []string `json:"reviews"`
		Sentiment   []string `json:"sentiment"`
		Price       []string `json:"price"`
		Seller      []string `json:"seller"`
		Description []string `json:"description"`
	} `json:"breakdown"`
	Sources []string `json:"sources"`
}

// normalize strips markdown fences the model may emit despite instructions,
// slices from the first '{' to the last '}' to drop surrounding commentary,
// and parses the span.
func normalize(raw string) (providerPayload, error) {
	var p providerPayload
	text := stripFences(raw)
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start == -1 || end == -1 || end < start {
		return p, fmt.Errorf("%w: no object delimiters", ErrParse)
	}
	if err := json.Unmarshal([]byte(text[start:end+1]), &p); err != nil {
		return p, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return p, nil
}

// stripFences removes a ```-style wrapper, with or without a language tag.
func stripFences(s string) string {
	t := strings.TrimSpace(s)
	i := strings.Index(t, "```")
	if i == -1 {
		return t
	}
	t = t[i+3:]
	if nl := strings.IndexByte(t, '\n'); nl != -1 {
		tag := strings.TrimSpace(t[:nl])
		if tag != "" && !strings.ContainsAny(tag, "{}") {
			t = t[nl+1:]
		}
	}
	if j := strings.LastIndex(t, "```"); j != -1 {
		t = t[:j]
	}
	return strings.TrimSpace(t)
}

// Default texts used whenever the provider omits or malforms a field.
const (
	defaultReason    = "Analysis based on domain patterns."
	defaultAdvice    = "Proceed with caution."
	defaultBreakdown = "Data unavailable."
)

// formatResult turns a loosely-typed payload into a fully-populated Result.
// It cannot fail: every missing field has a defined default, the verdict always
// goes through ClassifyVerdict, and sources are capped at MaxSources.
func formatResult(req domain.Request, p providerPayload, citations []string, now time.Time) domain.Result {
	score := 0
	if p.TrustScore != nil {
		score = *p.TrustScore
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return domain.Result{
		TrustScore: score,
		Verdict:    domain.ClassifyVerdict(p.Verdict),
		Reasons:    linesOr(p.Reasons, defaultReason),
		Advice:     textOr(p.Advice, defaultAdvice),
		Breakdown: domain.Breakdown{
			Reviews:     linesOr(p.Breakdown.Reviews, defaultBreakdown),
			Sentiment:   linesOr(p.Breakdown.Sentiment, defaultBreakdown),
			Price:       linesOr(p.Breakdown.Price, defaultBreakdown),
			Seller:      linesOr(p.Breakdown.Seller, defaultBreakdown),
			Description: linesOr(p.Breakdown.Description, defaultBreakdown),
		},
		Sources:   mergeSources(citations, p.Sources),
		URL:       req.URL,
		Timestamp: now,
	}
}

func textOr(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func linesOr(list []string, fallback string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return []string{fallback}
	}
	return out
}

// mergeSources prefers citation metadata over payload-declared sources,
// dedupes, and truncates to MaxSources.
func mergeSources(citations, declared []string) []string {
	seen := make(map[string]bool, domain.MaxSources)
	out := make([]string, 0, domain.MaxSources)
	for _, src := range append(append([]string{}, citations...), declared...) {
		src = strings.TrimSpace(src)
		if src == "" || seen[src] {
			continue
		}
		seen[src] = true
		out = append(out, src)
		if len(out) == domain.MaxSources {
			break
		}
	}
	return out
}
