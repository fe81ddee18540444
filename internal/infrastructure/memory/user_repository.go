package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/tanpopo-api/internal/domain"
	"github.com/jhoicas/tanpopo-api/internal/domain/entity"
	"github.com/jhoicas/tanpopo-api/internal/domain/repository"
)

// UserRepo implementación en memoria de repository.UserRepository.
type UserRepo struct {
	db *userTable
}

// NewUserRepository construye el repositorio sobre db.
func NewUserRepository(db *DB) *UserRepo {
	return &UserRepo{db: db.users}
}

var _ repository.UserRepository = (*UserRepo)(nil)

func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	for _, existing := range r.db.t {
		if existing.Username == u.Username {
			return domain.ErrUsernameTaken
		}
	}
	cp := *u
	r.db.t[u.ID] = &cp
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	if u, ok := r.db.t[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *UserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	for _, u := range r.db.t {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) Update(_ context.Context, u *entity.User) error {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	if _, ok := r.db.t[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	cp := *u
	r.db.t[u.ID] = &cp
	return nil
}

func (r *UserRepo) ListActive(_ context.Context) ([]*entity.User, error) {
	return r.list(func(u *entity.User) bool { return u.IsActive }), nil
}

func (r *UserRepo) ListActiveByRole(_ context.Context, role string) ([]*entity.User, error) {
	return r.list(func(u *entity.User) bool { return u.IsActive && u.Role == role }), nil
}

func (r *UserRepo) Deactivate(_ context.Context, id string) error {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	u, ok := r.db.t[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.IsActive = false
	return nil
}

// list filtra y ordena por fecha de creación (igual que la consulta SQL).
func (r *UserRepo) list(keep func(*entity.User) bool) []*entity.User {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	out := make([]*entity.User, 0, len(r.db.t))
	for _, u := range r.db.t {
		if keep(u) {
			cp := *u
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].Username < out[j].Username
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}
