package config

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	versionPattern  = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?$`)
	sliderIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// report yaml keys instead of Go field names
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "" || name == "-" {
				return strings.ToLower(field.Name)
			}
			return name
		})

		_ = v.RegisterValidation("doc_version", func(fl validator.FieldLevel) bool {
			return versionPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("slider_id", func(fl validator.FieldLevel) bool {
			return sliderIDPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}
