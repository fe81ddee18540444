// Package sanitize limpia texto libre recibido desde formularios públicos.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strictPolicy elimina todo el HTML; solo conserva el texto.
var strictPolicy = bluemonday.StrictPolicy()

// Text quita etiquetas HTML y espacios sobrantes. El resultado se guarda como texto plano,
// por eso se revierten las entidades que bluemonday escapa (&amp;, &#39;, ...).
func Text(s string) string {
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(s)))
}

// OptionalText aplica Text a un puntero; devuelve nil si queda vacío.
func OptionalText(s *string) *string {
	if s == nil {
		return nil
	}
	clean := Text(*s)
	if clean == "" {
		return nil
	}
	return &clean
}
