package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upInit, downInit)
}

func upInit(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	CREATE TABLE universities (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		short_name TEXT NOT NULL,
		x          DOUBLE PRECISION NOT NULL,
		y          DOUBLE PRECISION NOT NULL,
		color      TEXT NOT NULL,
		state      TEXT NOT NULL
	);

	CREATE TABLE posts (
		id              UUID PRIMARY KEY,
		content         VARCHAR(280) NOT NULL,
		image_url       TEXT,
		video_url       TEXT,
		university_id   TEXT NOT NULL REFERENCES universities (id),
		color           TEXT NOT NULL,
		likes_count     INTEGER NOT NULL DEFAULT 0 CHECK (likes_count >= 0),
		comments_count  INTEGER NOT NULL DEFAULT 0 CHECK (comments_count >= 0),
		views_count     INTEGER NOT NULL DEFAULT 0 CHECK (views_count >= 0),
		created_at      TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now(),
		expires_at      TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now() + INTERVAL '7 days'
	);

	CREATE INDEX posts_created_at_idx ON posts (created_at DESC);
	CREATE INDEX posts_expires_at_idx ON posts (expires_at);
	CREATE INDEX posts_university_id_idx ON posts (university_id, created_at DESC);

	CREATE TABLE comments (
		id          UUID PRIMARY KEY,
		post_id     UUID NOT NULL REFERENCES posts (id) ON DELETE CASCADE,
		content     VARCHAR(500) NOT NULL,
		created_at  TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now(),
		expires_at  TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now() + INTERVAL '7 days'
	);

	CREATE INDEX comments_post_id_idx ON comments (post_id, created_at);
	CREATE INDEX comments_expires_at_idx ON comments (expires_at);

	CREATE TABLE reactions (
		id             UUID PRIMARY KEY,
		post_id        UUID NOT NULL REFERENCES posts (id) ON DELETE CASCADE,
		reaction_type  TEXT NOT NULL CHECK (reaction_type IN ('like')),
		created_at     TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now(),
		expires_at     TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now() + INTERVAL '7 days'
	);

	CREATE INDEX reactions_expires_at_idx ON reactions (expires_at);
	`)
	return err
}

func downInit(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	DROP TABLE IF EXISTS reactions;
	DROP TABLE IF EXISTS comments;
	DROP TABLE IF EXISTS posts;
	DROP TABLE IF EXISTS universities;
	`)
	return err
}
