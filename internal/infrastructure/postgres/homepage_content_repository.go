package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/tanpopo-api/internal/domain"
	"github.com/jhoicas/tanpopo-api/internal/domain/entity"
	"github.com/jhoicas/tanpopo-api/internal/domain/repository"
)

var _ repository.HomepageContentRepository = (*HomepageContentRepo)(nil)

const homepageColumns = `id, section, content_key, content_value, updated_at, updated_by`

// HomepageContentRepo implementación del puerto HomepageContentRepository sobre PostgreSQL.
type HomepageContentRepo struct {
	q Querier
}

// NewHomepageContentRepository construye el adaptador. Acepta pool o tx (Querier).
func NewHomepageContentRepository(q Querier) *HomepageContentRepo {
	return &HomepageContentRepo{q: q}
}

// List ordenado por sección y clave; section vacío = todas.
func (r *HomepageContentRepo) List(ctx context.Context, section string) ([]*entity.HomepageContent, error) {
	query := `SELECT ` + homepageColumns + ` FROM homepage_content`
	var args []any
	if section != "" {
		query += ` WHERE section = $1`
		args = append(args, section)
	}
	query += ` ORDER BY section, content_key`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list homepage content: %w", err)
	}
	return collect(rows, scanHomepageContent)
}

// Upsert por (section, content_key); conserva el id existente.
func (r *HomepageContentRepo) Upsert(ctx context.Context, c *entity.HomepageContent) (*entity.HomepageContent, error) {
	query := `
		INSERT INTO homepage_content (` + homepageColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT ON CONSTRAINT homepage_content_section_key_key DO UPDATE
		SET content_value = EXCLUDED.content_value,
		    updated_at = EXCLUDED.updated_at,
		    updated_by = EXCLUDED.updated_by
		RETURNING ` + homepageColumns
	saved, err := scanHomepageContent(r.q.QueryRow(ctx, query,
		c.ID, c.Section, c.ContentKey, c.ContentValue, c.UpdatedAt, c.UpdatedBy,
	))
	if err != nil {
		return nil, fmt.Errorf("upsert homepage content: %w", err)
	}
	return saved, nil
}

// Delete devuelve domain.ErrNotFound si no existe.
func (r *HomepageContentRepo) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	tag, err := r.q.Exec(ctx, `DELETE FROM homepage_content WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete homepage content: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanHomepageContent(row pgxScanner) (*entity.HomepageContent, error) {
	var c entity.HomepageContent
	if err := row.Scan(&c.ID, &c.Section, &c.ContentKey, &c.ContentValue, &c.UpdatedAt, &c.UpdatedBy); err != nil {
		return nil, err
	}
	return &c, nil
}
