// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as Article, Community and the
// flattened ArticleFeedRecord, along with their validation rules and domain-specific errors.
package entity

import "time"

// Article represents a published article. Every article has exactly one writer.
type Article struct {
	ID        int64
	WriterID  int64
	Title     string
	Text      string
	Views     int64
	ImageURL  string
	CreatedAt time.Time
}

// WriterProfile is the read-only display projection of the user who wrote an article.
type WriterProfile struct {
	UserID       int64
	Username     string
	Name         string
	Lastname     string
	ProfileImage string
}

// Category is a topic label shared by articles and communities.
type Category struct {
	ID   int64
	Name string
}

// UnknownCategoryName labels a category id that no longer resolves to a name,
// e.g. a link left behind after the category was deleted.
const UnknownCategoryName = "Unknown"

// CategoryLabel is a resolved category attached to a feed record.
type CategoryLabel struct {
	ID   int64  `json:"category_id" yaml:"category_id"`
	Name string `json:"category_name" yaml:"category_name"`
}

// ArticleFeedRecord is the uniform, flattened shape returned by every feed and
// relevance query. Writer fields are copied onto the record, never nested.
type ArticleFeedRecord struct {
	ArticleID    int64           `json:"id_article" yaml:"id_article"`
	WriterID     int64           `json:"id_writer" yaml:"id_writer"`
	Title        string          `json:"title" yaml:"title"`
	Text         string          `json:"text" yaml:"text"`
	Views        int64           `json:"views" yaml:"views"`
	ImageURL     string          `json:"image_url" yaml:"image_url"`
	CreatedAt    time.Time       `json:"date" yaml:"date"`
	Username     string          `json:"username" yaml:"username"`
	Name         string          `json:"name" yaml:"name"`
	Lastname     string          `json:"lastname" yaml:"lastname"`
	ProfileImage string          `json:"profile_image,omitempty" yaml:"profile_image,omitempty"`
	Categories   []CategoryLabel `json:"categories,omitempty" yaml:"categories,omitempty"`
}
