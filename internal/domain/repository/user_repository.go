package repository

import (
	"context"

	"github.com/jhoicas/tanpopo-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los métodos Get* devuelven (nil, nil) si no existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	ListActive(ctx context.Context) ([]*entity.User, error)
	ListActiveByRole(ctx context.Context, role string) ([]*entity.User, error)
	// Deactivate baja lógica (is_active = false).
	Deactivate(ctx context.Context, id string) error
}
