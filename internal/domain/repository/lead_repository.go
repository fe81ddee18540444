package repository

import (
	"context"

	"github.com/jhoicas/tanpopo-api/internal/domain/entity"
)

// RegistrationRepository persistencia de solicitudes de visita (solo inserción y lectura).
type RegistrationRepository interface {
	Create(ctx context.Context, r *entity.Registration) error
	// List ordenado por fecha de creación descendente.
	List(ctx context.Context) ([]*entity.Registration, error)
}

// ContactMessageRepository persistencia de mensajes de contacto (solo inserción y lectura).
type ContactMessageRepository interface {
	Create(ctx context.Context, m *entity.ContactMessage) error
	// List ordenado por fecha de creación descendente.
	List(ctx context.Context) ([]*entity.ContactMessage, error)
}
