package validation

import "time"

// DateLayout formato de fecha laboral (work date).
const DateLayout = "2006-01-02"

// IsDate indica si s es una fecha válida AAAA-MM-DD.
func IsDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
