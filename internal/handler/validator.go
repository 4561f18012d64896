package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/questgame/internal/domain"
)

// Validator checks request bodies against their validate tags
type Validator struct {
	validate *validator.Validate
}

var (
	validatorOnce sync.Once
	sharedValid   *Validator
)

// GetValidator returns the shared validator, building it on first use
func GetValidator() *Validator {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonFieldName)
		if err := v.RegisterValidation("category", validateCategory); err != nil {
			panic(fmt.Sprintf("handler: register category validation: %v", err))
		}
		sharedValid = &Validator{validate: v}
	})
	return sharedValid
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s any) error {
	return v.validate.Struct(s)
}

// Field errors report the json name so the UI can match its inputs
func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

var tagMessages = map[string]string{
	"required": "This field is required",
	"category": domain.ErrMsgInvalidCategory,
	"oneof":    "Must be one of: %s",
	"max":      "Must be at most %s",
	"min":      "Must be at least %s",
	"gt":       "Must be greater than %s",
}

// FormatValidationError maps each failed field to a short message
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"error": "Invalid request format"}
	}

	out := make(map[string]string, len(verrs))
	for _, e := range verrs {
		msg, ok := tagMessages[e.Tag()]
		switch {
		case !ok:
			msg = "Invalid value"
		case strings.Contains(msg, "%s"):
			msg = fmt.Sprintf(msg, e.Param())
		}
		out[strings.ToLower(e.Field())] = msg
	}
	return out
}

// validateCategory accepts build, ship and reach. Empty is left to required.
func validateCategory(fl validator.FieldLevel) bool {
	c := fl.Field().String()
	return c == "" || domain.Category(c).Valid()
}
