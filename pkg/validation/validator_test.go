package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tanpopo-api/pkg/validation"
)

type sample struct {
	Name  string  `json:"name" validate:"notblank"`
	Email string  `json:"email" validate:"omitempty,email"`
	Lat   float64 `json:"latitude" validate:"min=-90,max=90"`
	Day   string  `json:"day" validate:"omitempty,date"`
}

type nested struct {
	Items []sample `json:"items" validate:"required,min=1,dive"`
}

func TestStruct_Valido(t *testing.T) {
	v := validation.New()
	assert.NoError(t, v.Struct(sample{Name: "Lan", Email: "lan@example.com", Lat: 10.7, Day: "2026-10-16"}))
}

func TestStruct_ErroresPorCampoConNombreJSON(t *testing.T) {
	v := validation.New()
	err := v.Struct(sample{Name: "   ", Email: "no-es-email", Lat: 91, Day: "16/10/2026"})
	require.Error(t, err)

	fe, ok := err.(validation.FieldErrors)
	require.True(t, ok, "debe devolver FieldErrors")
	assert.Len(t, fe, 4)
	assert.Contains(t, fe, "name")
	assert.Contains(t, fe, "email")
	assert.Contains(t, fe, "latitude")
	assert.Equal(t, "day debe tener el formato AAAA-MM-DD", fe["day"])
	assert.Equal(t, "name no puede estar vacío", fe["name"])
}

func TestStruct_NamespaceAnidado(t *testing.T) {
	v := validation.New()
	err := v.Struct(nested{Items: []sample{{Name: "ok"}, {Name: ""}}})
	require.Error(t, err)

	fe := err.(validation.FieldErrors)
	assert.Contains(t, fe, "items[1].name")
}

func TestIsDate(t *testing.T) {
	assert.True(t, validation.IsDate("2026-02-28"))
	assert.False(t, validation.IsDate("2026-02-30"))
	assert.False(t, validation.IsDate(""))
}
