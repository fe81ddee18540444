package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tanpopo-api/internal/application/dto"
	"github.com/jhoicas/tanpopo-api/internal/application/usecase"
	"github.com/jhoicas/tanpopo-api/internal/domain"
	"github.com/jhoicas/tanpopo-api/internal/infrastructure/memory"
)

func newLeadUseCase() *usecase.LeadUseCase {
	db := memory.Open()
	return usecase.NewLeadUseCase(memory.NewRegistrationRepository(db), memory.NewContactMessageRepository(db))
}

func TestCreateRegistration_QuitaHTML(t *testing.T) {
	uc := newLeadUseCase()
	ctx := context.Background()

	id, err := uc.CreateRegistration(ctx, dto.CreateRegistrationRequest{
		ParentName: `<script>alert(1)</script>Nguyễn Văn A`,
		Phone:      "0901 234 567",
		ChildName:  ptr("<i>Bé Na</i>"),
		ChildAge:   ptr("   "),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	items, err := uc.ListRegistrations(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Nguyễn Văn A", items[0].ParentName)
	require.NotNil(t, items[0].ChildName)
	assert.Equal(t, "Bé Na", *items[0].ChildName)
	assert.Nil(t, items[0].ChildAge)
}

func TestCreateRegistration_SoloEtiquetasRechazado(t *testing.T) {
	uc := newLeadUseCase()

	_, err := uc.CreateRegistration(context.Background(), dto.CreateRegistrationRequest{
		ParentName: "<b></b>", Phone: "0901",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestContactMessages_MasRecientesPrimero(t *testing.T) {
	uc := newLeadUseCase()
	ctx := context.Background()

	for _, msg := range []string{"primero", "segundo"} {
		_, err := uc.CreateContactMessage(ctx, dto.CreateContactMessageRequest{
			Name: "Chị Hoa", Email: "hoa@example.com", Message: msg,
		})
		require.NoError(t, err)
	}

	items, err := uc.ListContactMessages(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "segundo", items[0].Message)
	assert.Equal(t, "primero", items[1].Message)
}
