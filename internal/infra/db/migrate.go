package db

import (
	"context"
	"database/sql"
	"fmt"
)

// schemaUp creates the tables in dependency order. Every statement is idempotent.
var schemaUp = []string{
	`CREATE TABLE IF NOT EXISTS users (
    id            BIGSERIAL PRIMARY KEY,
    username      TEXT NOT NULL UNIQUE,
    name          TEXT NOT NULL DEFAULT '',
    lastname      TEXT NOT NULL DEFAULT '',
    profile_image TEXT,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	`CREATE TABLE IF NOT EXISTS categories (
    id   BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL UNIQUE
)`,
	`CREATE TABLE IF NOT EXISTS articles (
    id         BIGSERIAL PRIMARY KEY,
    writer_id  BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    title      TEXT NOT NULL,
    text       TEXT NOT NULL DEFAULT '',
    views      BIGINT NOT NULL DEFAULT 0,
    image_url  TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	`CREATE TABLE IF NOT EXISTS article_categories (
    article_id  BIGINT NOT NULL REFERENCES articles(id) ON DELETE CASCADE,
    category_id BIGINT NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
    PRIMARY KEY (article_id, category_id)
)`,
	`CREATE TABLE IF NOT EXISTS communities (
    id          BIGSERIAL PRIMARY KEY,
    name        TEXT NOT NULL,
    description TEXT,
    creator_id  BIGINT NOT NULL REFERENCES users(id),
    avatar_url  TEXT,
    banner_url  TEXT,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	`CREATE TABLE IF NOT EXISTS community_categories (
    community_id BIGINT NOT NULL REFERENCES communities(id) ON DELETE CASCADE,
    category_id  BIGINT NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
    PRIMARY KEY (community_id, category_id)
)`,
	`CREATE TABLE IF NOT EXISTS community_members (
    id           BIGSERIAL PRIMARY KEY,
    community_id BIGINT NOT NULL REFERENCES communities(id) ON DELETE CASCADE,
    user_id      BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    joined_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
    UNIQUE (community_id, user_id)
)`,
	// Removing a link never touches the article or its categories.
	`CREATE TABLE IF NOT EXISTS community_articles (
    id           BIGSERIAL PRIMARY KEY,
    community_id BIGINT NOT NULL REFERENCES communities(id) ON DELETE CASCADE,
    article_id   BIGINT NOT NULL REFERENCES articles(id) ON DELETE CASCADE,
    user_id      BIGINT NOT NULL REFERENCES users(id),
    linked_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
    UNIQUE (community_id, article_id)
)`,
	`CREATE TABLE IF NOT EXISTS saved_articles (
    id         BIGSERIAL PRIMARY KEY,
    user_id    BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    article_id BIGINT NOT NULL REFERENCES articles(id) ON DELETE CASCADE,
    saved_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
    UNIQUE (user_id, article_id)
)`,
	// feed and relevance reads
	`CREATE INDEX IF NOT EXISTS idx_community_articles_feed ON community_articles(community_id, linked_at DESC, id DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_community_articles_user ON community_articles(user_id, community_id)`,
	`CREATE INDEX IF NOT EXISTS idx_articles_writer_created ON articles(writer_id, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_saved_articles_user ON saved_articles(user_id, saved_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_article_categories_category ON article_categories(category_id)`,
}

// schemaDown drops the tables in reverse dependency order.
var schemaDown = []string{
	`DROP TABLE IF EXISTS saved_articles`,
	`DROP TABLE IF EXISTS community_articles`,
	`DROP TABLE IF EXISTS community_members`,
	`DROP TABLE IF EXISTS community_categories`,
	`DROP TABLE IF EXISTS communities`,
	`DROP TABLE IF EXISTS article_categories`,
	`DROP TABLE IF EXISTS articles`,
	`DROP TABLE IF EXISTS categories`,
	`DROP TABLE IF EXISTS users`,
}

// MigrateUp creates the schema. It stops at the first failing statement.
func MigrateUp(ctx context.Context, db *sql.DB) error {
	return execAll(ctx, db, "migrate up", schemaUp)
}

// MigrateDown rolls back the database schema.
// Use with caution: this will delete all data in the affected tables.
func MigrateDown(ctx context.Context, db *sql.DB) error {
	return execAll(ctx, db, "migrate down", schemaDown)
}

func execAll(ctx context.Context, db *sql.DB, op string, stmts []string) error {
	for i, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%s: statement %d: %w", op, i+1, err)
		}
	}
	return nil
}
