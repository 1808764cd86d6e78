// internal/types/validate.go
//
// Shared struct validator for the type catalog.
//
// The same go-playground instance backs every Validate() method in this
// package.  Field names in error details come from the json tag, so a
// failing AIRequest reports "top_p", not "TopP".
package types

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New()

	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	// model_name accepts only the catalogued AI model identifiers.
	_ = val.RegisterValidation("model_name", func(fl validator.FieldLevel) bool {
		return ModelName(fl.Field().String()).Valid()
	})

	return val
}

// Validate runs tag validation on s and folds every failing field into one
// Validation error whose details map field name → broken rule.
func Validate(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// Non-validation failure, e.g. a non-struct argument.
		return NewValidationError(err.Error(), nil)
	}

	details := make(map[string]Value, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		details[fe.Field()] = String(rule)
	}
	return NewValidationError("validation failed", details)
}
