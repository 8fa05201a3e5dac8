// Package repository declares the read/write contracts the community usecases depend on.
// Implementations return (nil, nil) or an empty slice when nothing matches;
// a non-nil error always means the store itself failed.
package repository

import (
	"context"
	"time"

	"community-feed/internal/domain/entity"
)

type ArticleRepository interface {
	// Get returns the article or nil when it does not exist.
	Get(ctx context.Context, id int64) (*entity.Article, error)
	// ListByIDs loads the given articles created at or after since in a single round trip.
	// A zero since disables the time filter. Missing ids are silently absent from the result,
	// and the result order is unspecified.
	ListByIDs(ctx context.Context, ids []int64, since time.Time) ([]*entity.Article, error)
	// ListByWriter returns the articles written by userID, newest first.
	ListByWriter(ctx context.Context, userID int64) ([]*entity.Article, error)
	// ListSavedBy returns the articles bookmarked by userID, most recently saved first.
	ListSavedBy(ctx context.Context, userID int64) ([]*entity.Article, error)
	// CategoryIDs returns the category ids attached to one article.
	CategoryIDs(ctx context.Context, articleID int64) ([]int64, error)
	// CategoryIDsByArticles batches CategoryIDs for many articles, keyed by article id.
	CategoryIDsByArticles(ctx context.Context, articleIDs []int64) (map[int64][]int64, error)
}
