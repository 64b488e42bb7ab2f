package repositories_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whispr-campus/whispr/internal/repositories"
)

func TestDeleteExpiredQuery(t *testing.T) {
	now := time.Date(2024, 12, 9, 0, 0, 0, 0, time.UTC)

	for _, table := range []string{"posts", "comments", "reactions"} {
		t.Run(table, func(t *testing.T) {
			query, args, err := repositories.DeleteExpiredQuery(table, now)
			require.NoError(t, err)
			assert.Equal(t, "DELETE FROM "+table+" WHERE expires_at < $1", query)
			assert.Equal(t, []interface{}{now}, args)
		})
	}
}

func TestIncrementQuery(t *testing.T) {
	query, args, err := repositories.IncrementQuery("posts", "views_count", "abc")
	require.NoError(t, err)
	assert.Equal(t, "UPDATE posts SET views_count = views_count + 1 WHERE id = $1", query)
	assert.Equal(t, []interface{}{"abc"}, args)
}

func TestIncrementLiveQuery(t *testing.T) {
	now := time.Date(2024, 12, 9, 0, 0, 0, 0, time.UTC)

	query, args, err := repositories.IncrementLiveQuery("posts", "likes_count", "abc", now)
	require.NoError(t, err)
	assert.Equal(t, "UPDATE posts SET likes_count = likes_count + 1 WHERE id = $1 AND expires_at > $2", query)
	assert.Equal(t, []interface{}{"abc", now}, args)
}

func TestPgErrorClassification(t *testing.T) {
	fk := fmt.Errorf("insert comment: %w", &pgconn.PgError{Code: "23503"})
	uniq := &pgconn.PgError{Code: "23505"}

	assert.True(t, repositories.IsForeignKeyViolation(fk))
	assert.False(t, repositories.IsForeignKeyViolation(uniq))
	assert.False(t, repositories.IsForeignKeyViolation(fmt.Errorf("plain")))
}
