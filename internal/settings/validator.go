// internal/settings/validator.go
//
// Thin wrapper around go-playground/validator.
//
// Context
// -------
// `internal/settings/loader.go` calls `invalidFields` immediately after it
// unmarshals the merged Koanf tree into a `Settings` instance.  Unlike a
// plain `v.Struct` call, the wrapper collects EVERY failing field, keyed by
// its environment-variable name, so one startup attempt reports the whole
// damage instead of the first missing variable.
package settings

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New()

	// Report fields by their koanf tag, i.e. the env-var name the operator
	// has to fix.
	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("koanf"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	return val
}

// invalidFields returns env-var name → broken rule for every validation
// failure, or a non-nil error for failures that are not field-level (such
// as passing a non-struct).
func invalidFields(c *Settings) (map[string]string, error) {
	err := v.Struct(c)
	if err == nil {
		return nil, nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil, err
	}

	bad := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		bad[fe.Field()] = rule
	}
	return bad, nil
}
