package university

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/whispr-campus/whispr/internal/domain"
	"github.com/whispr-campus/whispr/internal/repositories"
	"github.com/whispr-campus/whispr/pkg/logger"

	sq "github.com/Masterminds/squirrel"
)

type PgxRepository struct {
	pool   *pgxpool.Pool
	logger logger.Logger
}

func NewPgxRepository(pool *pgxpool.Pool, logger logger.Logger) *PgxRepository {
	return &PgxRepository{
		pool:   pool,
		logger: logger.WithComponent("UniversityRepo"),
	}
}

var _ Repository = (*PgxRepository)(nil)

func selectUniversities() sq.SelectBuilder {
	return repositories.SqBuilder.
		Select("id", "name", "short_name", "x", "y", "color", "state").
		From("universities")
}

func (r *PgxRepository) GetAll(ctx context.Context) ([]domain.University, error) {
	query, args, err := selectUniversities().OrderBy("name ASC").ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query universities: %w", err)
	}
	defer rows.Close()

	var universities []domain.University
	for rows.Next() {
		u, err := scanUniversity(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan university row: %w", err)
		}
		universities = append(universities, *u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating university rows: %w", err)
	}

	return universities, nil
}

func (r *PgxRepository) GetByID(ctx context.Context, id string) (*domain.University, error) {
	query, args, err := selectUniversities().Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	u, err := scanUniversity(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get university by id: %w", err)
	}
	return u, nil
}

func scanUniversity(row pgx.Row) (*domain.University, error) {
	var (
		u     domain.University
		color string
	)
	if err := row.Scan(&u.ID, &u.Name, &u.ShortName, &u.X, &u.Y, &color, &u.State); err != nil {
		return nil, err
	}
	u.Color = domain.Color(color)
	return &u, nil
}
