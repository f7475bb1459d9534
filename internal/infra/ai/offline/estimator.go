package offline

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/cloudflare/ahocorasick"

	"github.com/sakethvvv/verify-your-cart-v1.3/internal/application"
	domain "github.com/sakethvvv/verify-your-cart-v1.3/internal/domain/analysis"
)

// DefaultDelay keeps UI loading states paced like a live tier call.
const DefaultDelay = 800 * time.Millisecond

// Static rule tables. Trusted names win over scam signals when both match.
var trustedRetailers = []string{
	"amazon", "ebay", "walmart", "target", "bestbuy", "costco",
	"etsy", "aliexpress", "alibaba", "flipkart", "myntra", "shopify",
	"nike", "adidas", "apple", "samsung", "ikea", "zara", "sephora", "homedepot",
}

var scamSignals = []string{
	"free-giveaway", "giveaway", "winner", "claim-now", "claim",
	"prize", "lottery", "flash-sale", "limited-time", "act-now",
	"90-off", "99-off", "urgent",
}

// Estimator produces a best-effort verdict from URL patterns alone.
// Total and deterministic: same URL, same verdict, no I/O.
type Estimator struct {
	delay time.Duration
	clock application.Clock

	// Matcher.Match mutates automaton state, so one Estimator shared across
	// requests must serialize matching.
	mu      sync.Mutex
	trusted *ahocorasick.Matcher
	scam    *ahocorasick.Matcher
}

func NewEstimator(delay time.Duration, clock application.Clock) *Estimator {
	return &Estimator{
		delay:   delay,
		clock:   clock,
		trusted: ahocorasick.NewStringMatcher(trustedRetailers),
		scam:    ahocorasick.NewStringMatcher(scamSignals),
	}
}

func (e *Estimator) Estimate(ctx context.Context, req domain.Request) domain.Result {
	e.pause(ctx)

	lower := []byte(strings.ToLower(req.URL))

	e.mu.Lock()
	// trusted is checked first so a known retailer never trips the scam branch
	isTrusted := len(e.trusted.Match(lower)) > 0
	isScam := !isTrusted && len(e.scam.Match(lower)) > 0
	e.mu.Unlock()

	switch {
	case isTrusted:
		return e.result(req, 92, domain.VerdictGenuine,
			"Domain matches a known major retailer.",
			"This looks like an established retailer. Standard purchase precautions apply.")
	case isScam:
		return e.result(req, 25, domain.VerdictFake,
			"Suspicious promotional keywords detected in the URL.",
			"High risk. Do not enter payment details or personal information on this site.")
	default:
		return e.result(req, 65, domain.VerdictSuspicious,
			"Couldn't fully verify this store from the URL alone.",
			"Proceed with caution and verify the seller through independent reviews before buying.")
	}
}

func (e *Estimator) result(req domain.Request, score int, verdict domain.Verdict, reason, advice string) domain.Result {
	offline := []string{"Live analysis unavailable (offline mode)."}
	return domain.Result{
		TrustScore: score,
		Verdict:    verdict,
		Reasons:    []string{reason},
		Advice:     advice,
		Breakdown: domain.Breakdown{
			Reviews:     offline,
			Sentiment:   offline,
			Price:       offline,
			Seller:      offline,
			Description: offline,
		},
		Sources:   []string{},
		URL:       req.URL,
		Timestamp: e.clock.Now(),
	}
}

// pause simulates live-tier latency; an expired context skips the wait but the
// estimate is still produced.
func (e *Estimator) pause(ctx context.Context) {
	if e.delay <= 0 {
		return
	}
	t := time.NewTimer(e.delay)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
