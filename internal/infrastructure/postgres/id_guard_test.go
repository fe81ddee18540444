package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tanpopo-api/internal/domain"
	"github.com/jhoicas/tanpopo-api/internal/domain/repository"
	"github.com/jhoicas/tanpopo-api/internal/infrastructure/postgres"
)

// Los repositorios se construyen sin pool: un id que no es uuid no debe llegar a la base.

func TestUserRepo_IDNoUUIDEsInexistente(t *testing.T) {
	repo := postgres.NewUserRepository(nil)
	ctx := context.Background()

	for _, id := range []string{"abc", "u-staff", "", "123"} {
		u, err := repo.GetByID(ctx, id)
		require.NoError(t, err, id)
		assert.Nil(t, u, id)

		assert.ErrorIs(t, repo.Deactivate(ctx, id), domain.ErrUserNotFound, id)
	}
}

func TestAttendanceRepo_UsuarioNoUUIDSinRegistros(t *testing.T) {
	repo := postgres.NewAttendanceRepository(nil)
	ctx := context.Background()

	rec, err := repo.GetByUserAndDate(ctx, "abc", "2026-03-02")
	require.NoError(t, err)
	assert.Nil(t, rec)

	records, err := repo.ListByUser(ctx, "abc", repository.DateRange{})
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestHomepageContentRepo_DeleteIDNoUUID(t *testing.T) {
	repo := postgres.NewHomepageContentRepository(nil)
	assert.ErrorIs(t, repo.Delete(context.Background(), "abc"), domain.ErrNotFound)
}
