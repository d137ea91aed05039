// Package validation собирает валидатор входных данных с правилами проекта.
package validation

import (
	"math"
	"reflect"

	"github.com/go-playground/validator"
)

// TagFinite отклоняет ±Inf и NaN в числовых полях.
const TagFinite = "finite"

// New возвращает validator.Validate с зарегистрированным тегом finite.
func New() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation(TagFinite, finite); err != nil {
		panic(err)
	}
	return v
}

func finite(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		f := field.Float()
		return !math.IsInf(f, 0) && !math.IsNaN(f)
	}
	return true
}
