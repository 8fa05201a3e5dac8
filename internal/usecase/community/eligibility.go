package community

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"community-feed/internal/domain/entity"
	"community-feed/internal/observability/metrics"
)

// TryLink cross-posts the article into the community on behalf of userID.
//
// The link is created only when the article and the community share at least one
// category. Duplicate prevention rests on the store's (community, article)
// uniqueness: of several concurrent calls for the same pair exactly one reports
// LinkLinked and the others LinkAlreadyLinked. A non-nil error is returned only
// for invalid ids or a store failure.
func (s *Service) TryLink(ctx context.Context, communityID, articleID, userID int64) (outcome entity.LinkOutcome, err error) {
	const op = "try link"
	ctx, o := s.begin(ctx, "TryLink",
		attribute.Int64("community.id", communityID),
		attribute.Int64("article.id", articleID),
		attribute.Int64("user.id", userID))
	defer func() {
		if err == nil {
			o.span.SetAttributes(attribute.String("link.outcome", outcome.String()))
			metrics.RecordLinkAttempt(outcome.String())
			s.log(ctx).DebugContext(ctx, "link attempt",
				slog.Int64("community_id", communityID),
				slog.Int64("article_id", articleID),
				slog.Int64("user_id", userID),
				slog.String("outcome", outcome.String()))
		}
		o.end(-1, err)
	}()

	if err := entity.ValidateIDs([]string{"community_id", "article_id", "user_id"}, communityID, articleID, userID); err != nil {
		return 0, invalidIDErr(op, err)
	}

	var (
		article             *entity.Article
		community           *entity.Community
		articleCategories   []int64
		communityCategories []int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		article, err = s.Articles.Get(gctx, articleID)
		return err
	})
	g.Go(func() error {
		var err error
		community, err = s.Communities.Get(gctx, communityID)
		return err
	})
	g.Go(func() error {
		var err error
		articleCategories, err = s.Articles.CategoryIDs(gctx, articleID)
		return err
	})
	g.Go(func() error {
		var err error
		communityCategories, err = s.Communities.CategoryIDs(gctx, communityID)
		return err
	})
	if err := g.Wait(); err != nil {
		return 0, storeErr(op, err)
	}

	if article == nil || community == nil {
		return entity.LinkNotFound, nil
	}
	if !overlaps(articleCategories, communityCategories) {
		return entity.LinkNoOverlap, nil
	}

	created, err := s.Links.Create(ctx, entity.CommunityArticleLink{
		CommunityID: communityID,
		ArticleID:   articleID,
		UserID:      userID,
		LinkedAt:    s.now(),
	})
	if err != nil {
		return 0, storeErr(op, err)
	}
	if !created {
		return entity.LinkAlreadyLinked, nil
	}
	return entity.LinkLinked, nil
}

// Unlink removes the link userID posted for the article in the community.
// It reports false when no such link exists. The article and its categories are untouched.
func (s *Service) Unlink(ctx context.Context, communityID, articleID, userID int64) (removed bool, err error) {
	const op = "unlink"
	ctx, o := s.begin(ctx, "Unlink",
		attribute.Int64("community.id", communityID),
		attribute.Int64("article.id", articleID),
		attribute.Int64("user.id", userID))
	defer func() { o.end(-1, err) }()

	if err := entity.ValidateIDs([]string{"community_id", "article_id", "user_id"}, communityID, articleID, userID); err != nil {
		return false, invalidIDErr(op, err)
	}

	removed, err = s.Links.Delete(ctx, communityID, articleID, userID)
	if err != nil {
		return false, storeErr(op, err)
	}
	s.log(ctx).DebugContext(ctx, "unlink",
		slog.Int64("community_id", communityID),
		slog.Int64("article_id", articleID),
		slog.Bool("removed", removed))
	return removed, nil
}
