package repository

import (
	"context"

	"github.com/jhoicas/tanpopo-api/internal/domain/entity"
)

// HomepageContentRepository define el puerto de persistencia para HomepageContent.
type HomepageContentRepository interface {
	// List ordenado por sección y clave; section vacío = todas.
	List(ctx context.Context, section string) ([]*entity.HomepageContent, error)
	// Upsert crea o actualiza por (Section, ContentKey) y devuelve la fila resultante.
	Upsert(ctx context.Context, content *entity.HomepageContent) (*entity.HomepageContent, error)
	// Delete devuelve domain.ErrNotFound si no existe.
	Delete(ctx context.Context, id string) error
}
