package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	slidekiterrors "github.com/alexisbeaulieu97/slidekit/pkg/errors"
)

// convertValidationError normalizes validator errors into slidekit validation
// errors. prefix is prepended to the reported field.
func convertValidationError(prefix string, err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		if prefix != "" {
			field = prefix + "." + field
		}
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Param() != "" {
			msg = fmt.Sprintf("%s failed validation for tag '%s=%s'", field, ve.Tag(), ve.Param())
		}
		return slidekiterrors.NewValidationError(field, msg, err)
	}

	return slidekiterrors.NewValidationError("config", err.Error(), err)
}

func fieldForSlider(index int, field string) string {
	if field == "" {
		return fmt.Sprintf("sliders[%d]", index)
	}
	return fmt.Sprintf("sliders[%d].%s", index, field)
}

// yamlishFieldName drops the root struct from the namespace. Segment names
// already come from yaml tags.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.SplitN(fe.Namespace(), ".", 2)
	if len(parts) == 2 {
		return parts[1]
	}
	return fe.Field()
}
