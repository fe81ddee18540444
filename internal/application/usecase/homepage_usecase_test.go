package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tanpopo-api/internal/application/dto"
	"github.com/jhoicas/tanpopo-api/internal/application/usecase"
	"github.com/jhoicas/tanpopo-api/internal/domain"
	"github.com/jhoicas/tanpopo-api/internal/domain/entity"
	"github.com/jhoicas/tanpopo-api/internal/domain/repository"
	"github.com/jhoicas/tanpopo-api/internal/infrastructure/memory"
)

func newHomepageUseCase() *usecase.HomepageUseCase {
	db := memory.Open()
	return usecase.NewHomepageUseCase(memory.NewHomepageContentRepository(db), memory.NewTxRunner(db))
}

func TestHomepageUpsert_ReemplazaPorSeccionYClave(t *testing.T) {
	uc := newHomepageUseCase()
	ctx := context.Background()

	first, err := uc.Upsert(ctx, dto.UpsertHomepageContentRequest{Section: "hero", ContentKey: "title", ContentValue: "Hola"}, "u-admin")
	require.NoError(t, err)
	second, err := uc.Upsert(ctx, dto.UpsertHomepageContentRequest{Section: "hero", ContentKey: "title", ContentValue: "Xin chào"}, "u-admin")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	items, err := uc.List(ctx, "hero")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Xin chào", items[0].ContentValue)
}

func TestHomepageList_OrdenadoPorSeccionYClave(t *testing.T) {
	uc := newHomepageUseCase()
	ctx := context.Background()
	_, err := uc.BulkUpsert(ctx, dto.BulkHomepageContentRequest{Items: []dto.UpsertHomepageContentRequest{
		{Section: "programs", ContentKey: "title", ContentValue: "Programas"},
		{Section: "hero", ContentKey: "subtitle", ContentValue: "b"},
		{Section: "hero", ContentKey: "image_url", ContentValue: "a"},
	}}, "u-admin")
	require.NoError(t, err)

	items, err := uc.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []string{"hero/image_url", "hero/subtitle", "programs/title"}, []string{
		items[0].Section + "/" + items[0].ContentKey,
		items[1].Section + "/" + items[1].ContentKey,
		items[2].Section + "/" + items[2].ContentKey,
	})
}

func TestHomepageDelete_Inexistente(t *testing.T) {
	uc := newHomepageUseCase()

	assert.ErrorIs(t, uc.Delete(context.Background(), "nope"), domain.ErrNotFound)
}

// failingTxRunner ejecuta fn sobre un repositorio que falla en el segundo Upsert.
type failingTxRunner struct {
	inner usecase.HomepageTxRunner
}

type failSecondUpsert struct {
	repository.HomepageContentRepository
	calls int
}

func (f *failSecondUpsert) Upsert(ctx context.Context, c *entity.HomepageContent) (*entity.HomepageContent, error) {
	f.calls++
	if f.calls == 2 {
		return nil, errors.New("fallo de escritura")
	}
	return f.HomepageContentRepository.Upsert(ctx, c)
}

func (r failingTxRunner) RunHomepage(ctx context.Context, fn func(repo repository.HomepageContentRepository) error) error {
	return r.inner.RunHomepage(ctx, func(repo repository.HomepageContentRepository) error {
		return fn(&failSecondUpsert{HomepageContentRepository: repo})
	})
}

func TestHomepageBulkUpsert_TodoONada(t *testing.T) {
	db := memory.Open()
	repo := memory.NewHomepageContentRepository(db)
	uc := usecase.NewHomepageUseCase(repo, failingTxRunner{inner: memory.NewTxRunner(db)})

	_, err := uc.BulkUpsert(context.Background(), dto.BulkHomepageContentRequest{Items: []dto.UpsertHomepageContentRequest{
		{Section: "hero", ContentKey: "title", ContentValue: "uno"},
		{Section: "hero", ContentKey: "subtitle", ContentValue: "dos"},
	}}, "u-admin")
	require.Error(t, err)

	items, err := repo.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, items, "el primer ítem no debe quedar guardado")
}
