package repository

import (
	"context"

	"community-feed/internal/domain/entity"
)

// LinkRepository manages community_articles rows, the record of an article being
// cross-posted into a community.
type LinkRepository interface {
	// ListByCommunity returns every link of the community, most recently linked first.
	ListByCommunity(ctx context.Context, communityID int64) ([]entity.CommunityArticleLink, error)
	// ListByUser returns the links userID created in the community, most recently linked first.
	ListByUser(ctx context.Context, userID, communityID int64) ([]entity.CommunityArticleLink, error)
	// Create inserts the link unless (community, article) is already linked.
	// created is false when the uniqueness constraint rejected the row.
	Create(ctx context.Context, link entity.CommunityArticleLink) (created bool, err error)
	// Delete removes the link posted by userID. removed is false when no row matched.
	Delete(ctx context.Context, communityID, articleID, userID int64) (removed bool, err error)
}
