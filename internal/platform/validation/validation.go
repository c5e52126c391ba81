// Package validation registers the custom validators used by request binding.
package validation

import (
	"reflect"

	"github.com/SscSPs/cafe_ledger/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Register installs the custom type funcs and tags on gin's validator engine.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return RegisterOn(v)
}

// RegisterOn installs the custom type funcs and tags on v.
func RegisterOn(v *validator.Validate) error {
	// lets numeric tags such as gte=0 apply to decimal amounts
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	return v.RegisterValidation("accounttype", isAccountType)
}

func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

func isAccountType(fl validator.FieldLevel) bool {
	return domain.AccountType(fl.Field().String()).IsValid()
}
