package analysis

import "context"

// Repository port (interface untuk persistence)
type Repository interface {
	Save(ctx context.Context, a *Analysis) error
	Get(ctx context.Context, id AnalysisID) (*Analysis, error)
	Paginate(ctx context.Context, page, pageSize int) ([]*Analysis, error)
	Summary(ctx context.Context, sinceDays int) (int, int, int, int, error)
}

// ArtifactStore port: archives a raw provider response, returns its URL
type ArtifactStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}
