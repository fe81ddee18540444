package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tanpopo-api/internal/application/dto"
	"github.com/jhoicas/tanpopo-api/internal/domain/entity"
	"github.com/jhoicas/tanpopo-api/internal/domain/repository"
)

// HomepageTxRunner ejecuta fn dentro de una transacción con un repositorio ligado a ella.
type HomepageTxRunner interface {
	RunHomepage(ctx context.Context, fn func(repo repository.HomepageContentRepository) error) error
}

// HomepageUseCase contenido editable de la página pública.
type HomepageUseCase struct {
	repo     repository.HomepageContentRepository
	txRunner HomepageTxRunner
}

// NewHomepageUseCase construye el caso de uso.
func NewHomepageUseCase(repo repository.HomepageContentRepository, txRunner HomepageTxRunner) *HomepageUseCase {
	return &HomepageUseCase{repo: repo, txRunner: txRunner}
}

// List devuelve el contenido ordenado por sección y clave; section vacío = todo.
func (uc *HomepageUseCase) List(ctx context.Context, section string) ([]dto.HomepageContentResponse, error) {
	items, err := uc.repo.List(ctx, strings.TrimSpace(section))
	if err != nil {
		return nil, err
	}
	out := make([]dto.HomepageContentResponse, 0, len(items))
	for _, c := range items {
		out = append(out, toHomepageResponse(c))
	}
	return out, nil
}

// Upsert crea o reemplaza el valor de (section, contentKey).
func (uc *HomepageUseCase) Upsert(ctx context.Context, in dto.UpsertHomepageContentRequest, updatedBy string) (*dto.HomepageContentResponse, error) {
	saved, err := uc.repo.Upsert(ctx, newHomepageContent(in, updatedBy, time.Now()))
	if err != nil {
		return nil, err
	}
	res := toHomepageResponse(saved)
	return &res, nil
}

// BulkUpsert aplica todos los ítems en una sola transacción: o se guardan todos o ninguno.
func (uc *HomepageUseCase) BulkUpsert(ctx context.Context, in dto.BulkHomepageContentRequest, updatedBy string) ([]dto.HomepageContentResponse, error) {
	now := time.Now()
	out := make([]dto.HomepageContentResponse, 0, len(in.Items))
	err := uc.txRunner.RunHomepage(ctx, func(repo repository.HomepageContentRepository) error {
		out = out[:0]
		for _, item := range in.Items {
			saved, err := repo.Upsert(ctx, newHomepageContent(item, updatedBy, now))
			if err != nil {
				return err
			}
			out = append(out, toHomepageResponse(saved))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina un bloque de contenido. Devuelve domain.ErrNotFound si no existe.
func (uc *HomepageUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func newHomepageContent(in dto.UpsertHomepageContentRequest, updatedBy string, now time.Time) *entity.HomepageContent {
	return &entity.HomepageContent{
		ID:           uuid.New().String(),
		Section:      strings.TrimSpace(in.Section),
		ContentKey:   strings.TrimSpace(in.ContentKey),
		ContentValue: in.ContentValue,
		UpdatedAt:    now,
		UpdatedBy:    updatedBy,
	}
}

func toHomepageResponse(c *entity.HomepageContent) dto.HomepageContentResponse {
	return dto.HomepageContentResponse{
		ID:           c.ID,
		Section:      c.Section,
		ContentKey:   c.ContentKey,
		ContentValue: c.ContentValue,
		UpdatedAt:    c.UpdatedAt,
		UpdatedBy:    c.UpdatedBy,
	}
}
