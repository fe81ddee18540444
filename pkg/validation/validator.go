// Package validation valida DTOs con go-playground/validator y produce mensajes por campo
// en español usando los nombres JSON de los campos.
package validation

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/locales/es"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	es_translations "github.com/go-playground/validator/v10/translations/es"
)

// tags propios
const (
	notBlankTag = "notblank"
	dateTag     = "date"
)

// FieldErrors errores de validación indexados por campo (nombre JSON).
type FieldErrors map[string]string

// Error implementa error con los mensajes ordenados por campo.
func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fe[k])
	}
	return strings.Join(parts, "; ")
}

// Validator envuelve validator.Validate con su traductor.
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// New construye el validador con traducciones en español y los tags propios registrados.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	_es := es.New()
	uni := ut.New(_es, _es)
	translator, _ := uni.GetTranslator("es")
	_ = es_translations.RegisterDefaultTranslations(validate, translator)

	// Use JSON tag names for errors instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation(notBlankTag, notBlankValidation)
	_ = validate.RegisterValidation(dateTag, dateValidation)
	registerText(validate, translator, notBlankTag, "{0} no puede estar vacío")
	registerText(validate, translator, dateTag, "{0} debe tener el formato AAAA-MM-DD")

	return &Validator{validate: validate, translator: translator}
}

// Struct valida s. Devuelve FieldErrors si hay errores de validación, nil si es válido.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		out[fieldPath(fe)] = fe.Translate(v.translator)
	}
	return out
}

// fieldPath quita el nombre del struct raíz del namespace: "Req.items[0].section" → "items[0].section".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func registerText(validate *validator.Validate, translator ut.Translator, tag, text string) {
	_ = validate.RegisterTranslation(
		tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

func notBlankValidation(fl validator.FieldLevel) bool {
	if str, ok := fl.Field().Interface().(string); ok {
		return strings.TrimSpace(str) != ""
	}
	return false
}

func dateValidation(fl validator.FieldLevel) bool {
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return IsDate(str)
}
