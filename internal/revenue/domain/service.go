package domain

import "context"

// Service exposes the recurring revenue metrics computation.
type Service interface {
	// Overview loads a consistent snapshot of subscriptions and settings,
	// then folds it into a MetricsResult. The fold itself is total; only
	// store reads can fail.
	Overview(ctx context.Context, filters Filters) (MetricsResult, error)
}
