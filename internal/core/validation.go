// AngelaMos | 2026
// validation.go

package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	nametagPattern  = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_ .-]+$`)
	hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}){1,2}$`)
	digitsPattern   = regexp.MustCompile(`^[0-9]+$`)
)

// NewValidator returns a validator with the TierHub custom tags registered
// and field names reported by their json tag.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			name = fld.Name
		}
		return name
	})

	mustRegister(v, "nametag", func(fl validator.FieldLevel) bool {
		return nametagPattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "hexcolor", func(fl validator.FieldLevel) bool {
		return hexColorPattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "strongpassword", func(fl validator.FieldLevel) bool {
		return IsStrongPassword(fl.Field().String())
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %s: %v", tag, err))
	}
}

// IsStrongPassword requires 8..128 characters with a lower, an upper, a
// digit and a symbol.
func IsStrongPassword(s string) bool {
	if len(s) < 8 || len(s) > 128 {
		return false
	}

	var lower, upper, digit, symbol bool
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}

	return lower && upper && digit && symbol
}

// IsDigits reports whether s is a non-empty run of ASCII digits.
func IsDigits(s string) bool {
	return digitsPattern.MatchString(s)
}

// FormatValidationError renders the first violated constraint.
func FormatValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request"
	}

	fe := verrs[0]
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "email":
		return field + " must be a valid email address"
	case "url":
		return field + " must be a valid URL"
	case "nametag":
		return field + " may only contain letters, digits, '.', '_' and '-'"
	case "username":
		return field + " may only contain letters, digits, spaces, '.', '_' and '-'"
	case "hexcolor":
		return field + " must be a hex color such as #ff8800"
	case "strongpassword":
		return field + " must be 8-128 characters with upper and lower case letters, a digit and a symbol"
	default:
		return fmt.Sprintf("%s failed on %s validation", field, fe.Tag())
	}
}

// DecodeJSON decodes the request body into dst and validates it.
func DecodeJSON(r *http.Request, v *validator.Validate, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return BadRequestError("request body is required")
		}
		return BadRequestError("invalid request body")
	}

	return Validate(v, dst)
}

func Validate(v *validator.Validate, dst any) error {
	if err := v.Struct(dst); err != nil {
		return BadRequestError(FormatValidationError(err))
	}
	return nil
}
