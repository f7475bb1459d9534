package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	domain "github.com/sakethvvv/verify-your-cart-v1.3/internal/domain/analysis"
)

type AnalysisRepository struct {
	db *sql.DB
}

func NewAnalysisRepository(db *sql.DB) *AnalysisRepository {
	return &AnalysisRepository{db: db}
}

// Save inserts an analysis record
func (r *AnalysisRepository) Save(ctx context.Context, a *domain.Analysis) error {
	const q = `
INSERT INTO trust_analysis
  (id, url, hostname, tier, trust_score, verdict, result_json, artifact_url, created_at)
VALUES (?,?,?,?,?,?,?,?,?)
ON DUPLICATE KEY UPDATE
  tier=VALUES(tier), trust_score=VALUES(trust_score), verdict=VALUES(verdict),
  result_json=VALUES(result_json), artifact_url=VALUES(artifact_url);
`
	resultJSON, err := json.Marshal(a.Result)
	if err != nil {
		// result_json column requires valid JSON; use empty object
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
WHERE id=?;
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
LIMIT ? OFFSET ?;
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
  COALESCE(SUM(verdict='Genuine'),0),
  COALESCE(SUM(verdict='Suspicious'),0),
  COALESCE(SUM(verdict='Fake'),0)
FROM trust_analysis
WHERE created_at >= NOW() - INTERVAL ? DAY;
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
