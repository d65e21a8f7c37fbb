// Package validation contains the logic for validating request data.
//
// It uses the validator library to enforce rules (required fields, email
// formats, enums) defined in struct tags and converts failures into
// field-level errors the client can understand.
package validation

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns the shared validator instance.
//
// validator.Validate caches struct metadata, so one instance is reused by
// every request type.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(wireName)
	})
	return validate
}

// wireName reports the json, query or param tag name of a field so errors
// refer to "photo_reference" rather than "PhotoReference".
func wireName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "query", "param"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}
