// Package form holds the wizard form schemas and their validation.
//
// Every field is required and a field fails only when it is empty; option
// membership is not checked here, the dropdowns only offer valid values.
package form

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/idilsaglam/dieta/internal/model"
)

// FieldErrors maps a field name to the message shown under its control.
// A nil or empty FieldErrors means the form is valid.
type FieldErrors map[string]string

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

// Has reports whether field has an error.
func (fe FieldErrors) Has(field string) bool {
	_, ok := fe[field]
	return ok
}

// Messages for the "required" rule, keyed by json field name.
var requiredMessages = map[string]string{
	model.FieldGender:    "O sexo é obrigatório",
	model.FieldObjective: "O objetivo é obrigatório",
	model.FieldLevel:     "Selecione o seu level",
	model.FieldName:      "O nome é obrigatório",
	model.FieldWeight:    "O peso é obrigatório",
	model.FieldAge:       "A idade é obrigatória",
	model.FieldHeight:    "A altura é obrigatória",
}

// formFieldKey is used when validation fails for a reason not tied to a field.
const formFieldKey = "form"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields by their json name so errors line up with model.Field* keys
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateCreate checks the step 2 form.
func ValidateCreate(in model.CreateInput) (model.CreateInput, FieldErrors) {
	if errs := check(in); len(errs) > 0 {
		return model.CreateInput{}, errs
	}
	return in, nil
}

// ValidatePersonal checks the step 1 form.
func ValidatePersonal(in model.PersonalInput) (model.PersonalInput, FieldErrors) {
	if errs := check(in); len(errs) > 0 {
		return model.PersonalInput{}, errs
	}
	return in, nil
}

func check(s any) FieldErrors {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{formFieldKey: err.Error()}
	}
	out := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	if fe.Tag() == "required" {
		if msg, ok := requiredMessages[fe.Field()]; ok {
			return msg
		}
	}
	return fe.Field() + " is invalid"
}
