package memory

import (
	"context"

	"github.com/jhoicas/tanpopo-api/internal/domain/entity"
	"github.com/jhoicas/tanpopo-api/internal/domain/repository"
)

// RegistrationRepo implementación en memoria de repository.RegistrationRepository.
type RegistrationRepo struct {
	db *registrationTable
}

// NewRegistrationRepository construye el repositorio sobre db.
func NewRegistrationRepository(db *DB) *RegistrationRepo {
	return &RegistrationRepo{db: db.registrations}
}

var _ repository.RegistrationRepository = (*RegistrationRepo)(nil)

func (r *RegistrationRepo) Create(_ context.Context, reg *entity.Registration) error {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()
	r.db.t = append(r.db.t, *reg)
	return nil
}

// List recorre en orden inverso de inserción (más recientes primero).
func (r *RegistrationRepo) List(_ context.Context) ([]*entity.Registration, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	out := make([]*entity.Registration, 0, len(r.db.t))
	for i := len(r.db.t) - 1; i >= 0; i-- {
		cp := r.db.t[i]
		out = append(out, &cp)
	}
	return out, nil
}

// ContactMessageRepo implementación en memoria de repository.ContactMessageRepository.
type ContactMessageRepo struct {
	db *contactTable
}

// NewContactMessageRepository construye el repositorio sobre db.
func NewContactMessageRepository(db *DB) *ContactMessageRepo {
	return &ContactMessageRepo{db: db.contacts}
}

var _ repository.ContactMessageRepository = (*ContactMessageRepo)(nil)

func (r *ContactMessageRepo) Create(_ context.Context, m *entity.ContactMessage) error {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()
	r.db.t = append(r.db.t, *m)
	return nil
}

// List recorre en orden inverso de inserción (más recientes primero).
func (r *ContactMessageRepo) List(_ context.Context) ([]*entity.ContactMessage, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	out := make([]*entity.ContactMessage, 0, len(r.db.t))
	for i := len(r.db.t) - 1; i >= 0; i-- {
		cp := r.db.t[i]
		out = append(out, &cp)
	}
	return out, nil
}
