package university_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/whispr-campus/whispr/internal/cache"
	"github.com/whispr-campus/whispr/internal/domain"
	"github.com/whispr-campus/whispr/internal/repositories/university"
	mock_university "github.com/whispr-campus/whispr/internal/repositories/university/mocks"
	"github.com/whispr-campus/whispr/pkg/logger"
)

var seeded = []domain.University{
	{ID: "unilag", Name: "University of Lagos", ShortName: "UNILAG", X: 25, Y: 70, Color: domain.ColorGreen, State: "Lagos"},
	{ID: "ui", Name: "University of Ibadan", ShortName: "UI", X: 20, Y: 65, Color: domain.ColorTeal, State: "Ibadan"},
}

func TestCachedRepositoryMissLoadsAndStores(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mock_university.NewMockRepository(ctrl)
	c := mock_university.NewMockCache(ctrl)
	ctx := context.Background()

	c.EXPECT().GetJSON(ctx, "universities:all", gomock.Any()).Return(cache.ErrNotFound)
	next.EXPECT().GetAll(ctx).Return(seeded, nil)
	c.EXPECT().SetJSON(ctx, "universities:all", seeded, time.Hour).Return(nil)

	repo := university.NewCachedRepository(next, c, time.Hour, logger.NewNop())
	got, err := repo.GetAll(ctx)

	require.NoError(t, err)
	assert.Equal(t, seeded, got)
}

func TestCachedRepositoryHitSkipsStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mock_university.NewMockRepository(ctrl)
	c := mock_university.NewMockCache(ctrl)
	ctx := context.Background()

	c.EXPECT().GetJSON(ctx, "universities:all", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, dest any) error {
			*(dest.(*[]domain.University)) = seeded
			return nil
		})

	repo := university.NewCachedRepository(next, c, time.Hour, logger.NewNop())
	got, err := repo.GetAll(ctx)

	require.NoError(t, err)
	assert.Equal(t, seeded, got)
}

func TestCachedRepositoryCacheWriteFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mock_university.NewMockRepository(ctrl)
	c := mock_university.NewMockCache(ctrl)
	ctx := context.Background()

	c.EXPECT().GetJSON(ctx, gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))
	next.EXPECT().GetAll(ctx).Return(seeded, nil)
	c.EXPECT().SetJSON(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

	repo := university.NewCachedRepository(next, c, time.Hour, logger.NewNop())
	got, err := repo.GetAll(ctx)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}
