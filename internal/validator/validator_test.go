package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Name  string `json:"product_name" validate:"required"`
	Price int    `json:"unit_price" validate:"gte=0"`
}

func TestStruct_Valid(t *testing.T) {
	errs := Struct(&sampleRequest{Name: "Beans", Price: 100})
	assert.Empty(t, errs)
}

func TestStruct_ReportsJSONFieldNames(t *testing.T) {
	errs := Struct(&sampleRequest{Price: -1})
	assert.Len(t, errs, 2)

	fields := []string{errs[0].Field, errs[1].Field}
	assert.Contains(t, fields, "product_name")
	assert.Contains(t, fields, "unit_price")
}

func TestFieldError_String(t *testing.T) {
	assert.Equal(t, "field 'product_name' failed on 'required'",
		FieldError{Field: "product_name", Tag: "required"}.String())
	assert.Equal(t, "field 'unit_price' failed on 'gte=0'",
		FieldError{Field: "unit_price", Tag: "gte", Param: "0"}.String())
}
