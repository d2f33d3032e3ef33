package dto

import (
	"html"
	"reflect"
	"strconv"
	"strings"

	"goldvest-ledger/internal/core/domain"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Request amounts must be below 10^amountIntegerDigits with at most
// amountFractionDigits decimals. The checks work on the coefficient digits
// and the exponent only, so "1e2000000" and "1e-2000000" are rejected
// without expanding them.
const (
	amountIntegerDigits  = 12
	amountFractionDigits = 8
	amountMaxDigits      = 32
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		Register(v)
	}
}

// Register installs the custom tags on v. The decimal type func makes
// decimal.Decimal fields validate as compact text.
func Register(v *validator.Validate) {
	v.RegisterTagNameFunc(jsonFieldName)
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	_ = v.RegisterValidation("account_id", validateAccountID)
	_ = v.RegisterValidation("amount", validateAmount)
}

// jsonFieldName reports fields by their JSON (or form/uri) name so errors
// match what the client sent.
func jsonFieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form", "uri"} {
		name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

// decimalValue renders a decimal as coefficient and exponent ("1e-2000000")
// rather than d.String(), which would print every digit of a huge exponent.
func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.Coefficient().String() + "e" + strconv.Itoa(int(d.Exponent()))
	}
	return nil
}

// validateAccountID accepts public account IDs like GV-12345.
func validateAccountID(fl validator.FieldLevel) bool {
	return domain.ValidAccountID(fl.Field().String())
}

// validateAmount bounds magnitude and precision. Sign and minimums are left
// to the rules engine so they surface as RULE_* errors.
func validateAmount(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	if d.NumDigits() > amountMaxDigits {
		return false
	}

	coef := strings.TrimPrefix(d.Coefficient().String(), "-")
	significant := strings.TrimRight(coef, "0")
	if significant == "" {
		return true
	}
	exp := int64(d.Exponent()) + int64(len(coef)-len(significant))
	if exp < -amountFractionDigits {
		return false
	}
	return int64(len(significant))+exp <= amountIntegerDigits
}

// SanitizeStruct trims whitespace and HTML-escapes every exported string
// field (including *string) of a struct pointer.
func SanitizeStruct(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	sanitizeFields(rv.Elem())
}

func sanitizeFields(rv reflect.Value) {
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() {
			continue
		}
		switch f.Kind() {
		case reflect.String:
			f.SetString(sanitize(f.String()))
		case reflect.Ptr:
			if f.IsNil() {
				continue
			}
			if elem := f.Elem(); elem.Kind() == reflect.String {
				elem.SetString(sanitize(elem.String()))
			}
		}
	}
}

func sanitize(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}
