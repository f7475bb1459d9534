package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	domain "github.com/sakethvvv/verify-your-cart-v1.3/internal/domain/analysis"
)

type AnalysisRepository struct {
	db *sql.DB
}

func NewAnalysisRepository(db *sql.DB) *AnalysisRepository {
	return &AnalysisRepository{db: db}
}

// Save inserts or updates an analysis record
func (r *AnalysisRepository) Save(ctx context.Context, a *domain.Analysis) error {
	const q = `
INSERT INTO trust_analysis
  (id, url, hostname, tier, trust_score, verdict, result_json, artifact_url, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
ON CONFLICT (id) DO UPDATE SET
  tier=EXCLUDED.tier,
  trust_score=EXCLUDED.trust_score,
  verdict=EXCLUDED.verdict,
  result_json=EXCLUDED.result_json,
  artifact_url=EXCLUDED.artifact_url;
`
	resultJSON, err := json.Marshal(a.Result)
	if err != nil {
		resultJSON = []byte("{}")
	}
	createdAt := a.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err = r.db.ExecContext(ctx, q,
		a.ID,
		stringOrDash(a.URL),
		stringOrDash(a.Hostname),
		stringOrDash(a.Tier),
		a.Result.TrustScore,
		a.Result.Verdict,
		string(resultJSON),
		a.ArtifactURL,
		createdAt,
	)
	return err
}

// Get returns one analysis by id
func (r *AnalysisRepository) Get(ctx context.Context, id domain.AnalysisID) (*domain.Analysis, error) {
	const q = `
SELECT id, url, hostname, tier, result_json, artifact_url, created_at
FROM trust_analysis
WHERE id=$1;
`
	return scanAnalysis(r.db.QueryRowContext(ctx, q, id))
}

// Paginate returns a page of analysis records ordered by created_at desc
func (r *AnalysisRepository) Paginate(ctx context.Context, page, pageSize int) ([]*domain.Analysis, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	const q = `
SELECT id, url, hostname, tier, result_json, artifact_url, created_at
FROM trust_analysis
ORDER BY created_at DESC, id DESC
LIMIT $1 OFFSET $2;
`
	rows, err := r.db.QueryContext(ctx, q, pageSize, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Analysis
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Summary returns total plus per-verdict counts within the window
func (r *AnalysisRepository) Summary(ctx context.Context, sinceDays int) (int, int, int, int, error) {
	if sinceDays <= 0 {
		sinceDays = 7
	}
	const q = `
SELECT
  COUNT(*),
  COUNT(*) FILTER (WHERE verdict='Genuine'),
  COUNT(*) FILTER (WHERE verdict='Suspicious'),
  COUNT(*) FILTER (WHERE verdict='Fake')
FROM trust_analysis
WHERE created_at >= NOW() - make_interval(days => $1);
`
	var total, genuine, suspicious, fake int
	err := r.db.QueryRowContext(ctx, q, sinceDays).Scan(&total, &genuine, &suspicious, &fake)
	return total, genuine, suspicious, fake, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row rowScanner) (*domain.Analysis, error) {
	var (
		a          domain.Analysis
		resultJSON string
	)
	if err := row.Scan(&a.ID, &a.URL, &a.Hostname, &a.Tier, &resultJSON, &a.ArtifactURL, &a.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(resultJSON), &a.Result); err != nil {
		return nil, err
	}
	return &a, nil
}

func stringOrDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
