package community

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"community-feed/internal/domain/entity"
)

// linkedArticles returns the community's linked articles created at or after since,
// most recently linked first. Links whose article is gone are skipped.
func (s *Service) linkedArticles(ctx context.Context, communityID int64, since time.Time) ([]*entity.Article, error) {
	links, err := s.Links.ListByCommunity(ctx, communityID)
	if err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return []*entity.Article{}, nil
	}

	articles, err := s.Articles.ListByIDs(ctx, linkedArticleIDs(links), since)
	if err != nil {
		return nil, err
	}
	return inLinkOrder(links, filterSince(articles, since)), nil
}

// filterSince re-applies the window in memory so the bound holds whatever the store returned.
func filterSince(articles []*entity.Article, since time.Time) []*entity.Article {
	if since.IsZero() {
		return articles
	}
	kept := articles[:0:0]
	for _, a := range articles {
		if !a.CreatedAt.Before(since) {
			kept = append(kept, a)
		}
	}
	return kept
}

// BuildFeed returns the articles linked to the community that were created at or
// after since, most recently linked first, with writer fields and category names.
// A community without links yields an empty feed.
func (s *Service) BuildFeed(ctx context.Context, communityID int64, since time.Time) (records []entity.ArticleFeedRecord, err error) {
	const op = "build feed"
	ctx, o := s.begin(ctx, "BuildFeed", attribute.Int64("community.id", communityID))
	defer func() { o.end(len(records), err) }()

	if err := entity.ValidateID("community_id", communityID); err != nil {
		return nil, invalidIDErr(op, err)
	}

	var (
		articles []*entity.Article
		names    map[int64]string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		articles, err = s.linkedArticles(gctx, communityID, since)
		return err
	})
	g.Go(func() error {
		var err error
		names, err = s.Categories.Names(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, storeErr(op, err)
	}
	if names == nil {
		names = map[int64]string{}
	}

	records, err = s.annotate(ctx, articles, names)
	if err != nil {
		return nil, storeErr(op, err)
	}
	return records, nil
}
