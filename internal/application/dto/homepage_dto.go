package dto

import "time"

// UpsertHomepageContentRequest entrada de POST /api/admin/homepage.
type UpsertHomepageContentRequest struct {
	Section      string `json:"section" validate:"notblank,max=50"`
	ContentKey   string `json:"contentKey" validate:"notblank,max=100"`
	ContentValue string `json:"contentValue" validate:"required,max=20000"`
}

// BulkHomepageContentRequest entrada de PUT /api/admin/homepage (una sola transacción).
type BulkHomepageContentRequest struct {
	Items []UpsertHomepageContentRequest `json:"items" validate:"required,min=1,max=100,dive"`
}

// HomepageContentResponse salida de un bloque de contenido.
type HomepageContentResponse struct {
	ID           string    `json:"id"`
	Section      string    `json:"section"`
	ContentKey   string    `json:"contentKey"`
	ContentValue string    `json:"contentValue"`
	UpdatedAt    time.Time `json:"updatedAt"`
	UpdatedBy    string    `json:"updatedBy"`
}
