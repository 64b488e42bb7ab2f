package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/whispr-campus/whispr/internal/migrations"
	"github.com/whispr-campus/whispr/pkg/config"
)

// Postgres is a database/sql handle used only for schema migrations. The
// services talk to the pgx pool.
type Postgres struct {
	db *sql.DB
}

func NewConnect(cfg *config.Config) (*Postgres, error) {
	return Open(cfg.GetDSN())
}

// Open connects to the database at dsn and verifies it answers.
func Open(dsn string) (*Postgres, error) {
	connect, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	if err = connect.Ping(); err != nil {
		_ = connect.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	return &Postgres{db: connect}, nil
}

func (p *Postgres) Close() error {
	return p.db.Close()
}

func prepare() error {
	goose.SetBaseFS(migrations.FS)
	return goose.SetDialect("postgres")
}

// Up applies every pending migration, including the university seed.
func (p *Postgres) Up(ctx context.Context) error {
	if err := prepare(); err != nil {
		return err
	}
	return goose.UpContext(ctx, p.db, ".")
}

func (p *Postgres) Down(ctx context.Context) error {
	if err := prepare(); err != nil {
		return err
	}
	return goose.DownContext(ctx, p.db, ".")
}

func (p *Postgres) Status(ctx context.Context) error {
	if err := prepare(); err != nil {
		return err
	}
	return goose.StatusContext(ctx, p.db, ".")
}

func (p *Postgres) Reset(ctx context.Context) error {
	if err := prepare(); err != nil {
		return err
	}
	return goose.ResetContext(ctx, p.db, ".")
}

func (p *Postgres) Version(ctx context.Context) (int64, error) {
	if err := prepare(); err != nil {
		return 0, err
	}
	return goose.GetDBVersionContext(ctx, p.db)
}
