package entity

import "time"

// HomepageContent texto editable de la página pública, identificado por (Section, ContentKey).
type HomepageContent struct {
	ID           string
	Section      string // hero, programs, facilities, staff, testimonials...
	ContentKey   string // title, description, image_url...
	ContentValue string
	UpdatedAt    time.Time
	UpdatedBy    string
}
