package sanitize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/tanpopo-api/pkg/sanitize"
)

func TestText_QuitaHTML(t *testing.T) {
	assert.Equal(t, "Hola mundo", sanitize.Text("  <b>Hola</b> <script>alert(1)</script>mundo "))
}

func TestText_ConservaCaracteres(t *testing.T) {
	assert.Equal(t, "Tom & Jerry's", sanitize.Text("Tom & Jerry's"))
	assert.Equal(t, "Bé Na, 4 tuổi", sanitize.Text("Bé Na, 4 tuổi"))
}

func TestOptionalText(t *testing.T) {
	assert.Nil(t, sanitize.OptionalText(nil))

	blank := "<p> </p>"
	assert.Nil(t, sanitize.OptionalText(&blank))

	s := "<i>9h sáng</i>"
	got := sanitize.OptionalText(&s)
	if assert.NotNil(t, got) {
		assert.Equal(t, "9h sáng", *got)
	}
}
