package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSaleNumber(t *testing.T) {
	pattern := regexp.MustCompile(`^SALE-\d{8}-\d{6}-\d{4}$`)

	number := GenerateSaleNumber()
	assert.Regexp(t, pattern, number)
}

func TestValidateStruct(t *testing.T) {
	type sample struct {
		Name     string `validate:"required"`
		Category string `validate:"required,oneof=standard senior junior"`
	}

	errs := ValidateStruct(sample{Name: "ok", Category: "senior"})
	assert.Empty(t, errs)

	errs = ValidateStruct(sample{Category: "child"})
	assert.Len(t, errs, 2)
	assert.Contains(t, errs, "Name")
	assert.Contains(t, errs, "Category")

	msg := FormatValidationErrors(errs)
	assert.Contains(t, msg, "Name: This field is required")
}
