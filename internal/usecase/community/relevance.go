package community

import (
	"context"
	"log/slog"
	"time"

	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"community-feed/internal/domain/entity"
)

// RelatedByAuthor returns the articles linked to the community that share the seed
// article's writer and were created at or after since, most recently linked first.
// An unknown seed or a community without links yields an empty result.
func (s *Service) RelatedByAuthor(ctx context.Context, articleID, communityID int64, since time.Time) (records []entity.ArticleFeedRecord, err error) {
	const op = "related by author"
	ctx, o := s.begin(ctx, "RelatedByAuthor",
		attribute.Int64("article.id", articleID),
		attribute.Int64("community.id", communityID))
	defer func() { o.end(len(records), err) }()

	if err := entity.ValidateIDs([]string{"article_id", "community_id"}, articleID, communityID); err != nil {
		return nil, invalidIDErr(op, err)
	}

	var (
		seed   *entity.Article
		linked []*entity.Article
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		seed, err = s.Articles.Get(gctx, articleID)
		return err
	})
	g.Go(func() error {
		var err error
		linked, err = s.linkedArticles(gctx, communityID, since)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, storeErr(op, err)
	}

	if seed == nil || seed.WriterID <= 0 {
		s.log(ctx).DebugContext(ctx, "seed article has no writer", slog.Int64("article_id", articleID))
		return []entity.ArticleFeedRecord{}, nil
	}

	matches := lo.Filter(linked, func(a *entity.Article, _ int) bool {
		return a.WriterID == seed.WriterID
	})
	records, err = s.annotate(ctx, matches, nil)
	if err != nil {
		return nil, storeErr(op, err)
	}
	return records, nil
}

// RelatedByCategory returns the articles linked to the community whose category set
// intersects the seed article's and that were created at or after since, most
// recently linked first. A seed without categories yields an empty result.
func (s *Service) RelatedByCategory(ctx context.Context, articleID, communityID int64, since time.Time) (records []entity.ArticleFeedRecord, err error) {
	const op = "related by category"
	ctx, o := s.begin(ctx, "RelatedByCategory",
		attribute.Int64("article.id", articleID),
		attribute.Int64("community.id", communityID))
	defer func() { o.end(len(records), err) }()

	if err := entity.ValidateIDs([]string{"article_id", "community_id"}, articleID, communityID); err != nil {
		return nil, invalidIDErr(op, err)
	}

	var (
		seedCategories []int64
		linked         []*entity.Article
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		seedCategories, err = s.Articles.CategoryIDs(gctx, articleID)
		return err
	})
	g.Go(func() error {
		var err error
		linked, err = s.linkedArticles(gctx, communityID, since)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, storeErr(op, err)
	}

	if len(seedCategories) == 0 || len(linked) == 0 {
		s.log(ctx).DebugContext(ctx, "no category candidates",
			slog.Int64("article_id", articleID),
			slog.Int("seed_categories", len(seedCategories)),
			slog.Int("linked", len(linked)))
		return []entity.ArticleFeedRecord{}, nil
	}

	ids := lo.Map(linked, func(a *entity.Article, _ int) int64 { return a.ID })
	categories, err := s.Articles.CategoryIDsByArticles(ctx, ids)
	if err != nil {
		return nil, storeErr(op, err)
	}

	matches := lo.Filter(linked, func(a *entity.Article, _ int) bool {
		return overlaps(categories[a.ID], seedCategories)
	})
	records, err = s.annotate(ctx, matches, nil)
	if err != nil {
		return nil, storeErr(op, err)
	}
	return records, nil
}

// overlaps reports whether the two category sets share at least one id.
func overlaps(a, b []int64) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	return lo.Some(a, b)
}
