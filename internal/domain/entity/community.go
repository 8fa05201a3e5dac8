package entity

import "time"

// Community groups members around a curated set of categories.
type Community struct {
	ID          int64
	Name        string
	Description string
	CreatorID   int64
	AvatarURL   string
	BannerURL   string
	CreatedAt   time.Time
}

// CommunityArticleLink records that UserID cross-posted ArticleID into CommunityID.
// The pair (CommunityID, ArticleID) is unique.
type CommunityArticleLink struct {
	ID          int64
	CommunityID int64
	ArticleID   int64
	UserID      int64
	LinkedAt    time.Time
}

// LinkOutcome is the result of an attempt to cross-post an article into a community.
// Every value is an expected outcome; none of them is an error.
type LinkOutcome int

const (
	// LinkLinked means a new link was created.
	LinkLinked LinkOutcome = iota + 1
	// LinkNoOverlap means the article shares no category with the community; nothing was written.
	LinkNoOverlap
	// LinkAlreadyLinked means the article was already linked to the community.
	LinkAlreadyLinked
	// LinkNotFound means the article or the community does not exist.
	LinkNotFound
)

// String returns the snake_case name used in logs, metrics and CLI output.
func (o LinkOutcome) String() string {
	switch o {
	case LinkLinked:
		return "linked"
	case LinkNoOverlap:
		return "no_overlap"
	case LinkAlreadyLinked:
		return "already_linked"
	case LinkNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}
