package analysis

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/sakethvvv/verify-your-cart-v1.3/internal/application"
	"github.com/sakethvvv/verify-your-cart-v1.3/internal/domain/ai"
	domain "github.com/sakethvvv/verify-your-cart-v1.3/internal/domain/analysis"
)

// TierOffline is recorded when the deterministic estimator resolved the verdict.
const TierOffline = "offline"

// Estimator is the terminal tier: total, deterministic, no error path.
type Estimator interface {
	Estimate(ctx context.Context, req domain.Request) domain.Result
}

// Service implements the tiered resolution pipeline.
// Providers are attempted strictly in order; each failure advances to the next
// tier and the estimator closes the sequence, so AnalyzeProduct is total.
// Service is designed to be used concurrently and is thread-safe.
type Service struct {
	Providers []ai.Provider
	Estimator Estimator
	Repo      domain.Repository    // optional: verdict history
	Artifacts domain.ArtifactStore // optional: raw provider output archive
	Clock     application.Clock

	// TierTimeout bounds each live attempt so a hung transport degrades like
	// any other tier failure instead of stalling the caller.
	TierTimeout time.Duration
}

// AnalyzeProduct resolves a trust verdict for a product URL. It never returns
// an error: any tier failure is contained here and the offline estimator
// guarantees a fully-populated result.
func (s *Service) AnalyzeProduct(ctx context.Context, rawURL string) *domain.Analysis {
	req := domain.NewRequest(rawURL)

	var (
		res     domain.Result
		tier    string
		rawText string
	)
	resolved := false
	for _, p := range s.Providers {
		r, raw, err := s.tryProvider(ctx, p, req)
		if err != nil {
			log.Printf("analysis tier failed: model=%s url=%s err=%v", p.Model(), req.URL, err)
			continue
		}
		res, tier, rawText, resolved = r, p.Model(), raw, true
		break
	}
	if !resolved {
		res = s.Estimator.Estimate(ctx, req)
		tier = TierOffline
	}

	a := &domain.Analysis{
		ID:        domain.AnalysisID(uuid.New().String()),
		URL:       req.URL,
		Hostname:  req.Hostname,
		Tier:      tier,
		Result:    res,
		CreatedAt: s.Clock.Now(),
	}

	// Audit trail is best-effort: storage problems must not degrade the verdict.
	s.archive(ctx, a, rawText)
	s.persist(ctx, a)
	return a
}

// tryProvider runs one live tier end to end: bounded call, normalize, format.
// A panic inside a provider is contained here as a tier failure.
func (s *Service) tryProvider(ctx context.Context, p ai.Provider, req domain.Request) (res domain.Result, raw string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("tier panic: %v", r)
		}
	}()

	tctx := ctx
	if s.TierTimeout > 0 {
		var cancel context.CancelFunc
		tctx, cancel = context.WithTimeout(ctx, s.TierTimeout)
		defer cancel()
	}

	resp, err := p.Analyze(tctx, req.URL, req.Hostname)
	if err != nil {
		return domain.Result{}, "", err
	}
	payload, err := normalize(resp.Text)
	if err != nil {
		return domain.Result{}, "", err
	}
	return formatResult(req, payload, resp.Citations, s.Clock.Now()), resp.Text, nil
}

func (s *Service) archive(ctx context.Context, a *domain.Analysis, rawText string) {
	if s.Artifacts == nil || rawText == "" {
		return
	}
	key := fmt.Sprintf("analyses/%s/%s.txt", a.Tier, a.ID)
	url, err := s.Artifacts.Put(ctx, key, []byte(rawText), "text/plain")
	if err != nil {
		log.Printf("artifact upload failed: id=%s err=%v", a.ID, err)
		return
	}
	a.ArtifactURL = url
}

func (s *Service) persist(ctx context.Context, a *domain.Analysis) {
	if s.Repo == nil {
		return
	}
	if err := s.Repo.Save(ctx, a); err != nil {
		log.Printf("analysis save failed: id=%s err=%v", a.ID, err)
	}
}

// Get ambil 1 analysis by id
func (s *Service) Get(ctx context.Context, id domain.AnalysisID) (*domain.Analysis, error) {
	if s.Repo == nil {
		return nil, fmt.Errorf("history is not configured")
	}
	return s.Repo.Get(ctx, id)
}

// List returns a page of stored analyses, newest first
func (s *Service) List(ctx context.Context, page, pageSize int) (*domain.PaginatedResult, error) {
	if s.Repo == nil {
		return nil, fmt.Errorf("history is not configured")
	}
	items, err := s.Repo.Paginate(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	return &domain.PaginatedResult{Data: items, Page: page, PageSize: pageSize}, nil
}

// Summary rekap verdict N hari terakhir
func (s *Service) Summary(ctx context.Context, sinceDays int) (map[string]any, error) {
	if s.Repo == nil {
		return nil, fmt.Errorf("history is not configured")
	}
	total, genuine, suspicious, fake, err := s.Repo.Summary(ctx, sinceDays)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"total_analyses": total,
		"genuine":        genuine,
		"suspicious":     suspicious,
		"fake":           fake,
	}, nil
}
