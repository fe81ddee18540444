package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/tanpopo-api/internal/domain"
	"github.com/jhoicas/tanpopo-api/internal/domain/entity"
	"github.com/jhoicas/tanpopo-api/internal/domain/repository"
)

type homepageRows map[string]*entity.HomepageContent

// HomepageRepo implementación en memoria de repository.HomepageContentRepository.
type HomepageRepo struct {
	db *homepageTable
}

// NewHomepageContentRepository construye el repositorio sobre db.
func NewHomepageContentRepository(db *DB) *HomepageRepo {
	return &HomepageRepo{db: db.homepage}
}

var _ repository.HomepageContentRepository = (*HomepageRepo)(nil)

func (r *HomepageRepo) List(_ context.Context, section string) ([]*entity.HomepageContent, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()
	return homepageRows(r.db.t).list(section), nil
}

func (r *HomepageRepo) Upsert(_ context.Context, c *entity.HomepageContent) (*entity.HomepageContent, error) {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()
	return homepageRows(r.db.t).upsert(c), nil
}

func (r *HomepageRepo) Delete(_ context.Context, id string) error {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()
	return homepageRows(r.db.t).delete(id)
}

// TxRunner simula una transacción: fn trabaja sobre una copia que se publica solo si no hay error.
type TxRunner struct {
	db *homepageTable
}

// NewTxRunner construye el runner sobre db.
func NewTxRunner(db *DB) *TxRunner {
	return &TxRunner{db: db.homepage}
}

// RunHomepage mantiene el lock de escritura durante fn.
func (t *TxRunner) RunHomepage(ctx context.Context, fn func(repo repository.HomepageContentRepository) error) error {
	t.db.mutex.Lock()
	defer t.db.mutex.Unlock()

	staged := make(homepageRows, len(t.db.t))
	for id, c := range t.db.t {
		cp := *c
		staged[id] = &cp
	}
	if err := fn(txHomepageRepo{rows: staged}); err != nil {
		return err
	}
	t.db.t = staged
	return nil
}

// txHomepageRepo opera sin lock sobre la copia de RunHomepage.
type txHomepageRepo struct {
	rows homepageRows
}

func (r txHomepageRepo) List(_ context.Context, section string) ([]*entity.HomepageContent, error) {
	return r.rows.list(section), nil
}

func (r txHomepageRepo) Upsert(_ context.Context, c *entity.HomepageContent) (*entity.HomepageContent, error) {
	return r.rows.upsert(c), nil
}

func (r txHomepageRepo) Delete(_ context.Context, id string) error {
	return r.rows.delete(id)
}

func (m homepageRows) list(section string) []*entity.HomepageContent {
	out := make([]*entity.HomepageContent, 0, len(m))
	for _, c := range m {
		if section == "" || c.Section == section {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Section != out[j].Section {
			return out[i].Section < out[j].Section
		}
		return out[i].ContentKey < out[j].ContentKey
	})
	return out
}

// upsert conserva el ID de la fila existente con la misma (sección, clave).
func (m homepageRows) upsert(c *entity.HomepageContent) *entity.HomepageContent {
	cp := *c
	for _, existing := range m {
		if existing.Section == c.Section && existing.ContentKey == c.ContentKey {
			cp.ID = existing.ID
			break
		}
	}
	m[cp.ID] = &cp
	res := cp
	return &res
}

func (m homepageRows) delete(id string) error {
	if _, ok := m[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m, id)
	return nil
}
