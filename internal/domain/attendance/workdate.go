package attendance

import (
	"time"

	"github.com/jhoicas/tanpopo-api/pkg/validation"
)

// WorkDate devuelve la fecha laboral (AAAA-MM-DD) de t en la zona horaria loc.
func WorkDate(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(validation.DateLayout)
}
