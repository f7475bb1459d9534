package analysis

import (
	"net/url"
	"strings"
	"time"
)

// ID tipe untuk Analysis
type AnalysisID string

// Verdict enum — the three-way trust classification shown to shoppers
type Verdict string

const (
	VerdictGenuine    Verdict = "Genuine"
	VerdictSuspicious Verdict = "Suspicious"
	VerdictFake       Verdict = "Fake"
)

// MaxSources caps evidence URIs surfaced per result
const MaxSources = 4

// Request value object. Hostname is best-effort: parse failure keeps the raw URL.
type Request struct {
	URL      string
	Hostname string
}

func NewRequest(rawURL string) Request {
	host := rawURL
	if u, err := url.Parse(strings.TrimSpace(rawURL)); err == nil && u.Hostname() != "" {
		host = u.Hostname()
	}
	return Request{URL: rawURL, Hostname: host}
}

// Breakdown value object: per-category explanation lines
type Breakdown struct {
	Reviews     []string `json:"reviews"`
	Sentiment   []string `json:"sentiment"`
	Price       []string `json:"price"`
	Seller      []string `json:"seller"`
	Description []string `json:"description"`
}

// Result is the canonical output. Every field is always populated; callers never
// see a partial or nil-bearing record.
type Result struct {
	TrustScore int       `json:"trust_score"`
	Verdict    Verdict   `json:"verdict"`
	Reasons    []string  `json:"reasons"`
	Advice     string    `json:"advice"`
	Breakdown  Breakdown `json:"breakdown"`
	Sources    []string  `json:"sources"`
	URL        string    `json:"url"`
	Timestamp  time.Time `json:"timestamp"`
}

// Aggregate Root: Analysis — a stored verdict for auditing and history
type Analysis struct {
	ID          AnalysisID `json:"id"`
	URL         string     `json:"url"`
	Hostname    string     `json:"hostname"`
	Tier        string     `json:"tier"` // resolving model id, or "offline"
	Result      Result     `json:"result"`
	ArtifactURL string     `json:"artifact_url,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
