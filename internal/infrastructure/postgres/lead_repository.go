package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/tanpopo-api/internal/domain/entity"
	"github.com/jhoicas/tanpopo-api/internal/domain/repository"
)

var (
	_ repository.RegistrationRepository   = (*RegistrationRepo)(nil)
	_ repository.ContactMessageRepository = (*ContactMessageRepo)(nil)
)

// RegistrationRepo solicitudes de visita sobre PostgreSQL.
type RegistrationRepo struct {
	q Querier
}

// NewRegistrationRepository construye el adaptador.
func NewRegistrationRepository(q Querier) *RegistrationRepo {
	return &RegistrationRepo{q: q}
}

func (r *RegistrationRepo) Create(ctx context.Context, reg *entity.Registration) error {
	query := `
		INSERT INTO registrations (id, parent_name, phone, child_name, child_age, visit_time, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		reg.ID, reg.ParentName, reg.Phone, reg.ChildName, reg.ChildAge, reg.VisitTime, reg.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert registration: %w", err)
	}
	return nil
}

func (r *RegistrationRepo) List(ctx context.Context) ([]*entity.Registration, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, parent_name, phone, child_name, child_age, visit_time, created_at
		FROM registrations ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return collect(rows, func(row pgxScanner) (*entity.Registration, error) {
		var reg entity.Registration
		err := row.Scan(&reg.ID, &reg.ParentName, &reg.Phone, &reg.ChildName, &reg.ChildAge, &reg.VisitTime, &reg.CreatedAt)
		if err != nil {
			return nil, err
		}
		return &reg, nil
	})
}

// ContactMessageRepo mensajes de contacto sobre PostgreSQL.
type ContactMessageRepo struct {
	q Querier
}

// NewContactMessageRepository construye el adaptador.
func NewContactMessageRepository(q Querier) *ContactMessageRepo {
	return &ContactMessageRepo{q: q}
}

func (r *ContactMessageRepo) Create(ctx context.Context, m *entity.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (id, name, email, phone, subject, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query, m.ID, m.Name, m.Email, m.Phone, m.Subject, m.Message, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	return nil
}

func (r *ContactMessageRepo) List(ctx context.Context) ([]*entity.ContactMessage, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, name, email, phone, subject, message, created_at
		FROM contact_messages ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	return collect(rows, func(row pgxScanner) (*entity.ContactMessage, error) {
		var m entity.ContactMessage
		if err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Subject, &m.Message, &m.CreatedAt); err != nil {
			return nil, err
		}
		return &m, nil
	})
}
