package community

import (
	"context"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"community-feed/internal/domain/entity"
)

// project flattens an article and its writer into a feed record. A nil names table
// leaves the record without categories.
func project(a *entity.Article, w entity.WriterProfile, categoryIDs []int64, names map[int64]string) entity.ArticleFeedRecord {
	rec := entity.ArticleFeedRecord{
		ArticleID:    a.ID,
		WriterID:     a.WriterID,
		Title:        a.Title,
		Text:         a.Text,
		Views:        a.Views,
		ImageURL:     a.ImageURL,
		CreatedAt:    a.CreatedAt,
		Username:     w.Username,
		Name:         w.Name,
		Lastname:     w.Lastname,
		ProfileImage: w.ProfileImage,
	}
	if names != nil {
		rec.Categories = labels(categoryIDs, names)
	}
	return rec
}

// labels resolves category ids through the preloaded name table.
// Ids missing from the table are labelled UnknownCategoryName.
func labels(ids []int64, names map[int64]string) []entity.CategoryLabel {
	return lo.Map(ids, func(id int64, _ int) entity.CategoryLabel {
		name, ok := names[id]
		if !ok {
			name = entity.UnknownCategoryName
		}
		return entity.CategoryLabel{ID: id, Name: name}
	})
}

// annotate batch-loads writer profiles, and category ids when names is non-nil,
// then projects the articles in their given order.
func (s *Service) annotate(ctx context.Context, articles []*entity.Article, names map[int64]string) ([]entity.ArticleFeedRecord, error) {
	if len(articles) == 0 {
		return []entity.ArticleFeedRecord{}, nil
	}

	var (
		profiles   map[int64]entity.WriterProfile
		categories map[int64][]int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		writerIDs := lo.Uniq(lo.Map(articles, func(a *entity.Article, _ int) int64 { return a.WriterID }))
		var err error
		profiles, err = s.Writers.Profiles(gctx, writerIDs)
		return err
	})
	if names != nil {
		g.Go(func() error {
			ids := lo.Uniq(lo.Map(articles, func(a *entity.Article, _ int) int64 { return a.ID }))
			var err error
			categories, err = s.Articles.CategoryIDsByArticles(gctx, ids)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return lo.Map(articles, func(a *entity.Article, _ int) entity.ArticleFeedRecord {
		return project(a, profiles[a.WriterID], categories[a.ID], names)
	}), nil
}

// inLinkOrder arranges articles the way links lists them, skipping links whose
// article did not load.
func inLinkOrder(links []entity.CommunityArticleLink, articles []*entity.Article) []*entity.Article {
	byID := lo.KeyBy(articles, func(a *entity.Article) int64 { return a.ID })
	ordered := make([]*entity.Article, 0, len(articles))
	for _, l := range links {
		if a, ok := byID[l.ArticleID]; ok {
			ordered = append(ordered, a)
		}
	}
	return ordered
}

func linkedArticleIDs(links []entity.CommunityArticleLink) []int64 {
	return lo.Uniq(lo.Map(links, func(l entity.CommunityArticleLink, _ int) int64 { return l.ArticleID }))
}
