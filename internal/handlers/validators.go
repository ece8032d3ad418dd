package handlers

import (
	"reflect"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var registerValidatorsOnce sync.Once

// registerValidators teaches gin's validator about decimal.Decimal fields.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
		_ = v.RegisterValidation("positive_decimal", validatePositiveDecimal)
	})
}

// decimalValue exposes a decimal to validation rules as its string form.
func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

func validatePositiveDecimal(fl validator.FieldLevel) bool {
	switch v := fl.Field().Interface().(type) {
	case string:
		d, err := decimal.NewFromString(v)
		return err == nil && d.IsPositive()
	case decimal.Decimal:
		return v.IsPositive()
	default:
		return false
	}
}
