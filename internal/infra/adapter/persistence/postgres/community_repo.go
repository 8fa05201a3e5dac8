package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"community-feed/internal/domain/entity"
	"community-feed/internal/repository"
)

type CommunityRepo struct {
	db DBTX
}

func NewCommunityRepo(db DBTX) repository.CommunityRepository {
	return &CommunityRepo{db: db}
}

func (repo *CommunityRepo) Get(ctx context.Context, id int64) (*entity.Community, error) {
	const query = `
SELECT id, name, COALESCE(description, ''), creator_id,
       COALESCE(avatar_url, ''), COALESCE(banner_url, ''), created_at
FROM communities
WHERE id = $1
LIMIT 1`
	var c entity.Community
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&c.ID, &c.Name, &c.Description, &c.CreatorID,
			&c.AvatarURL, &c.BannerURL, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &c, nil
}

func (repo *CommunityRepo) CategoryIDs(ctx context.Context, communityID int64) ([]int64, error) {
	const query = `
SELECT category_id
FROM community_categories
WHERE community_id = $1
ORDER BY category_id`
	return queryIDs(ctx, repo.db, "CategoryIDs", query, communityID)
}
