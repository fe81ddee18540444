package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tanpopo-api/internal/application/dto"
	"github.com/jhoicas/tanpopo-api/internal/application/usecase"
	"github.com/jhoicas/tanpopo-api/internal/domain"
	"github.com/jhoicas/tanpopo-api/internal/domain/entity"
	"github.com/jhoicas/tanpopo-api/internal/infrastructure/memory"
)

func ptr[T any](v T) *T { return &v }

func newUserUseCase() (*usecase.UserUseCase, *memory.UserRepo) {
	repo := memory.NewUserRepository(memory.Open())
	return usecase.NewUserUseCase(repo), repo
}

func TestUserCreate_NormalizaYHashea(t *testing.T) {
	uc, repo := newUserUseCase()
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.CreateUserRequest{
		Username: " Co.Lan ",
		Password: "secreto123",
		Role:     entity.RoleStaff,
		FullName: " Cô Lan ",
		Email:    ptr("  "),
	}, "u-admin")
	require.NoError(t, err)
	assert.Equal(t, "co.lan", out.Username)
	assert.Equal(t, "Cô Lan", out.FullName)
	assert.Nil(t, out.Email, "email en blanco se guarda como nulo")
	assert.True(t, out.IsActive)

	stored, err := repo.GetByID(ctx, out.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.CreatedBy)
	assert.Equal(t, "u-admin", *stored.CreatedBy)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreto123")))
}

func TestUserCreate_UsuarioDuplicado(t *testing.T) {
	uc, _ := newUserUseCase()
	ctx := context.Background()
	in := dto.CreateUserRequest{Username: "lan", Password: "secreto123", Role: entity.RoleStaff, FullName: "Lan"}

	_, err := uc.Create(ctx, in, "")
	require.NoError(t, err)

	in.Username = "LAN"
	_, err = uc.Create(ctx, in, "")
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestUserCreate_RolInvalido(t *testing.T) {
	uc, _ := newUserUseCase()

	_, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Username: "x", Password: "secreto123", Role: "director", FullName: "X",
	}, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserUpdate_SoloCamposPresentes(t *testing.T) {
	uc, repo := newUserUseCase()
	ctx := context.Background()
	created, err := uc.Create(ctx, dto.CreateUserRequest{
		Username: "lan", Password: "secreto123", Role: entity.RoleStaff, FullName: "Lan", Phone: ptr("0901"),
	}, "")
	require.NoError(t, err)

	out, err := uc.Update(ctx, created.ID, dto.UpdateUserRequest{
		Role:     ptr(entity.RoleManager),
		Password: ptr("nuevo-secreto"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleManager, out.Role)
	assert.Equal(t, "Lan", out.FullName)
	require.NotNil(t, out.Phone)
	assert.Equal(t, "0901", *out.Phone)

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("nuevo-secreto")))
}

func TestUserDelete_BajaLogica(t *testing.T) {
	uc, repo := newUserUseCase()
	ctx := context.Background()
	created, err := uc.Create(ctx, dto.CreateUserRequest{
		Username: "lan", Password: "secreto123", Role: entity.RoleStaff, FullName: "Lan",
	}, "")
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, "u-admin", created.ID))

	active, err := uc.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored, "la fila se conserva")
	assert.False(t, stored.IsActive)

	assert.ErrorIs(t, uc.Delete(ctx, "u-admin", created.ID), domain.ErrUserNotFound)
	_, err = uc.Update(ctx, created.ID, dto.UpdateUserRequest{FullName: ptr("Otra")})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserDelete_NoPuedeEliminarseASiMismo(t *testing.T) {
	uc, _ := newUserUseCase()

	err := uc.Delete(context.Background(), "u-admin", "u-admin")
	assert.ErrorIs(t, err, domain.ErrCannotDeleteSelf)
}
