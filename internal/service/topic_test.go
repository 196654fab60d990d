package service_test

import (
	"context"
	"testing"

	"github.com/pageza/cookbook/backend/internal/logger"
	"github.com/pageza/cookbook/backend/internal/service"
	"github.com/pageza/cookbook/backend/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopicService(t *testing.T) {
	db := testhelpers.SetupSQLite(t)
	svc := service.NewTopicService(db, logger.Nop())
	ctx := context.Background()

	soups, err := svc.Create(ctx, "  Soups ")
	require.NoError(t, err)
	assert.Equal(t, "Soups", soups.Name)
	_, err = svc.Create(ctx, "Breads")
	require.NoError(t, err)

	topics, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, topics, 2)
	assert.Equal(t, "Breads", topics[0].Name)
	assert.Equal(t, "Soups", topics[1].Name)

	got, err := svc.Get(ctx, soups.ID)
	require.NoError(t, err)
	assert.Equal(t, soups.ID, got.ID)

	_, err = svc.Get(ctx, 999)
	assert.ErrorIs(t, err, service.ErrNotFound)

	_, err = svc.Create(ctx, "   ")
	assert.ErrorIs(t, err, service.ErrValidation)

	_, err = svc.Create(ctx, " Soups")
	assert.ErrorIs(t, err, service.ErrTopicExists)
}
