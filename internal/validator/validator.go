package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func init() {
	// Report errors under the json field name, not the Go struct field.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

type FieldError struct {
	Field string
	Tag   string
	Param string
}

func (e FieldError) String() string {
	if e.Param != "" {
		return fmt.Sprintf("field '%s' failed on '%s=%s'", e.Field, e.Tag, e.Param)
	}
	return fmt.Sprintf("field '%s' failed on '%s'", e.Field, e.Tag)
}

// Struct validates a request DTO and returns one entry per failed field.
func Struct(data interface{}) []FieldError {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "body", Tag: "invalid"}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field: fe.Field(),
			Tag:   fe.Tag(),
			Param: fe.Param(),
		})
	}
	return out
}
