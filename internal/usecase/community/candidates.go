package community

import (
	"context"
	"time"

	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"community-feed/internal/domain/entity"
)

// UnpostedCandidates returns the articles userID wrote or saved that the user has
// not yet linked into the community: authored articles first, then saved ones,
// each newest first. Articles the user wrote and also saved appear in both groups.
func (s *Service) UnpostedCandidates(ctx context.Context, userID, communityID int64) (records []entity.ArticleFeedRecord, err error) {
	const op = "unposted candidates"
	ctx, o := s.begin(ctx, "UnpostedCandidates",
		attribute.Int64("user.id", userID),
		attribute.Int64("community.id", communityID))
	defer func() { o.end(len(records), err) }()

	if err := entity.ValidateIDs([]string{"user_id", "community_id"}, userID, communityID); err != nil {
		return nil, invalidIDErr(op, err)
	}

	var (
		authored, saved []*entity.Article
		links           []entity.CommunityArticleLink
		names           map[int64]string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		authored, err = s.Articles.ListByWriter(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		saved, err = s.Articles.ListSavedBy(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		links, err = s.Links.ListByUser(gctx, userID, communityID)
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

	posted := lo.SliceToMap(links, func(l entity.CommunityArticleLink) (int64, struct{}) {
		return l.ArticleID, struct{}{}
	})
	unposted := func(a *entity.Article, _ int) bool {
		_, ok := posted[a.ID]
		return !ok
	}
	candidates := append(lo.Filter(authored, unposted), lo.Filter(saved, unposted)...)

	if names == nil {
		names = map[int64]string{}
	}
	records, err = s.annotate(ctx, candidates, names)
	if err != nil {
		return nil, storeErr(op, err)
	}
	return records, nil
}

// PostedByUser returns the articles userID has linked into the community, most
// recently linked first, with writer fields and category names.
func (s *Service) PostedByUser(ctx context.Context, userID, communityID int64) (records []entity.ArticleFeedRecord, err error) {
	const op = "posted by user"
	ctx, o := s.begin(ctx, "PostedByUser",
		attribute.Int64("user.id", userID),
		attribute.Int64("community.id", communityID))
	defer func() { o.end(len(records), err) }()

	if err := entity.ValidateIDs([]string{"user_id", "community_id"}, userID, communityID); err != nil {
		return nil, invalidIDErr(op, err)
	}

	var (
		links []entity.CommunityArticleLink
		names map[int64]string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		links, err = s.Links.ListByUser(gctx, userID, communityID)
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
	if len(links) == 0 {
		return []entity.ArticleFeedRecord{}, nil
	}

	articles, err := s.Articles.ListByIDs(ctx, linkedArticleIDs(links), time.Time{})
	if err != nil {
		return nil, storeErr(op, err)
	}
	if names == nil {
		names = map[int64]string{}
	}
	records, err = s.annotate(ctx, inLinkOrder(links, articles), names)
	if err != nil {
		return nil, storeErr(op, err)
	}
	return records, nil
}
