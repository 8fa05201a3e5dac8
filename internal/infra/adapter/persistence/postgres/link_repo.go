package postgres

import (
	"context"
	"fmt"

	"community-feed/internal/domain/entity"
	"community-feed/internal/repository"
)

type LinkRepo struct {
	db DBTX
}

func NewLinkRepo(db DBTX) repository.LinkRepository {
	return &LinkRepo{db: db}
}

func (repo *LinkRepo) listLinks(ctx context.Context, op, query string, args ...interface{}) ([]entity.CommunityArticleLink, error) {
	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	links := make([]entity.CommunityArticleLink, 0, 32)
	for rows.Next() {
		var l entity.CommunityArticleLink
		if err := rows.Scan(&l.ID, &l.CommunityID, &l.ArticleID, &l.UserID, &l.LinkedAt); err != nil {
			return nil, fmt.Errorf("%s: Scan: %w", op, err)
		}
		links = append(links, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return links, nil
}

func (repo *LinkRepo) ListByCommunity(ctx context.Context, communityID int64) ([]entity.CommunityArticleLink, error) {
	const query = `
SELECT id, community_id, article_id, user_id, linked_at
FROM community_articles
WHERE community_id = $1
ORDER BY linked_at DESC, id DESC`
	return repo.listLinks(ctx, "ListByCommunity", query, communityID)
}

func (repo *LinkRepo) ListByUser(ctx context.Context, userID, communityID int64) ([]entity.CommunityArticleLink, error) {
	const query = `
SELECT id, community_id, article_id, user_id, linked_at
FROM community_articles
WHERE user_id = $1 AND community_id = $2
ORDER BY linked_at DESC, id DESC`
	return repo.listLinks(ctx, "ListByUser", query, userID, communityID)
}

// Create relies on the (community_id, article_id) unique constraint; a conflicting
// insert affects no rows and reports created=false.
func (repo *LinkRepo) Create(ctx context.Context, link entity.CommunityArticleLink) (bool, error) {
	const query = `
INSERT INTO community_articles (community_id, article_id, user_id, linked_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (community_id, article_id) DO NOTHING`
	res, err := repo.db.ExecContext(ctx, query,
		link.CommunityID, link.ArticleID, link.UserID, link.LinkedAt)
	if err != nil {
		return false, fmt.Errorf("Create: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("Create: RowsAffected: %w", err)
	}
	return n > 0, nil
}

func (repo *LinkRepo) Delete(ctx context.Context, communityID, articleID, userID int64) (bool, error) {
	const query = `
DELETE FROM community_articles
WHERE community_id = $1 AND article_id = $2 AND user_id = $3`
	res, err := repo.db.ExecContext(ctx, query, communityID, articleID, userID)
	if err != nil {
		return false, fmt.Errorf("Delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("Delete: RowsAffected: %w", err)
	}
	return n > 0, nil
}
