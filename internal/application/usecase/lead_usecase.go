package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tanpopo-api/internal/application/dto"
	"github.com/jhoicas/tanpopo-api/internal/domain"
	"github.com/jhoicas/tanpopo-api/internal/domain/entity"
	"github.com/jhoicas/tanpopo-api/internal/domain/repository"
	"github.com/jhoicas/tanpopo-api/pkg/sanitize"
)

// LeadUseCase formularios públicos: solicitudes de visita y mensajes de contacto.
// El texto libre se guarda sin HTML.
type LeadUseCase struct {
	registrations repository.RegistrationRepository
	contacts      repository.ContactMessageRepository
}

// NewLeadUseCase construye el caso de uso.
func NewLeadUseCase(registrations repository.RegistrationRepository, contacts repository.ContactMessageRepository) *LeadUseCase {
	return &LeadUseCase{registrations: registrations, contacts: contacts}
}

// CreateRegistration guarda una solicitud de visita y devuelve su ID.
func (uc *LeadUseCase) CreateRegistration(ctx context.Context, in dto.CreateRegistrationRequest) (string, error) {
	r := &entity.Registration{
		ID:         uuid.New().String(),
		ParentName: sanitize.Text(in.ParentName),
		Phone:      sanitize.Text(in.Phone),
		ChildName:  sanitize.OptionalText(in.ChildName),
		ChildAge:   sanitize.OptionalText(in.ChildAge),
		VisitTime:  sanitize.OptionalText(in.VisitTime),
		CreatedAt:  time.Now(),
	}
	// Un campo compuesto solo de etiquetas queda vacío tras limpiar.
	if r.ParentName == "" || r.Phone == "" {
		return "", domain.ErrInvalidInput
	}
	if err := uc.registrations.Create(ctx, r); err != nil {
		return "", err
	}
	return r.ID, nil
}

// CreateContactMessage guarda un mensaje de contacto y devuelve su ID.
func (uc *LeadUseCase) CreateContactMessage(ctx context.Context, in dto.CreateContactMessageRequest) (string, error) {
	m := &entity.ContactMessage{
		ID:        uuid.New().String(),
		Name:      sanitize.Text(in.Name),
		Email:     strings.TrimSpace(in.Email),
		Phone:     sanitize.OptionalText(in.Phone),
		Subject:   sanitize.OptionalText(in.Subject),
		Message:   sanitize.Text(in.Message),
		CreatedAt: time.Now(),
	}
	if m.Name == "" || m.Message == "" {
		return "", domain.ErrInvalidInput
	}
	if err := uc.contacts.Create(ctx, m); err != nil {
		return "", err
	}
	return m.ID, nil
}

// ListRegistrations más recientes primero.
func (uc *LeadUseCase) ListRegistrations(ctx context.Context) ([]dto.RegistrationResponse, error) {
	items, err := uc.registrations.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RegistrationResponse, 0, len(items))
	for _, r := range items {
		out = append(out, dto.RegistrationResponse{
			ID:         r.ID,
			ParentName: r.ParentName,
			Phone:      r.Phone,
			ChildName:  r.ChildName,
			ChildAge:   r.ChildAge,
			VisitTime:  r.VisitTime,
			CreatedAt:  r.CreatedAt,
		})
	}
	return out, nil
}

// ListContactMessages más recientes primero.
func (uc *LeadUseCase) ListContactMessages(ctx context.Context) ([]dto.ContactMessageResponse, error) {
	items, err := uc.contacts.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ContactMessageResponse, 0, len(items))
	for _, m := range items {
		out = append(out, dto.ContactMessageResponse{
			ID:        m.ID,
			Name:      m.Name,
			Email:     m.Email,
			Phone:     m.Phone,
			Subject:   m.Subject,
			Message:   m.Message,
			CreatedAt: m.CreatedAt,
		})
	}
	return out, nil
}
