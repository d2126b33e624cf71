// Package validation checks settings records before they are persisted.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/julianstephens/techclock/internal/constants"
	"github.com/julianstephens/techclock/internal/models"
	"github.com/julianstephens/techclock/internal/utils"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	// #RGB or #RRGGBB; alpha forms cannot be drawn by the terminal renderer
	rgbHexRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
)

// FieldError describes one rejected settings field
type FieldError struct {
	Field   string // json path, e.g. color_scheme.accent
	Tag     string
	Value   interface{}
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Error collects every rejected field of a record
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Error())
	}
	return "invalid settings: " + strings.Join(msgs, "; ")
}

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("zone", func(fl validator.FieldLevel) bool {
			return utils.ValidateTimezone(fl.Field().String())
		})

		_ = v.RegisterValidation("rgbhex", func(fl validator.FieldLevel) bool {
			return rgbHexRegex.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateSettings checks a complete record and reports every bad field
func ValidateSettings(settings models.Settings) error {
	err := validatorInstance().Struct(settings)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err
	}

	out := &Error{}
	for _, fe := range ves {
		out.Fields = append(out.Fields, FieldError{
			Field:   fieldPath(fe),
			Tag:     fe.Tag(),
			Value:   fe.Value(),
			Message: describe(fe),
		})
	}
	return out
}

// Timezone validates a single zone name
func Timezone(name string) error {
	if err := validatorInstance().Var(name, "required,zone"); err != nil {
		return fmt.Errorf("unknown timezone %q", name)
	}
	return nil
}

// HexColor validates a single CSS hex color
func HexColor(value string) error {
	if err := validatorInstance().Var(value, "required,rgbhex"); err != nil {
		return fmt.Errorf("%q is not a hex color like #00ff00", value)
	}
	return nil
}

// FontSize parses and range-checks a font size typed by the user
func FontSize(value string) (int, error) {
	size, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("font size must be a whole number")
	}
	rule := fmt.Sprintf("min=%d,max=%d", constants.MinFontSize, constants.MaxFontSize)
	if err := validatorInstance().Var(size, rule); err != nil {
		return 0, fmt.Errorf("font size must be between %d and %d", constants.MinFontSize, constants.MaxFontSize)
	}
	return size, nil
}

// fieldPath drops the root struct name from the namespace
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s], got %q", fe.Param(), fe.Value())
	case "rgbhex":
		return fmt.Sprintf("%q is not a hex color like #00ff00", fe.Value())
	case "zone":
		return fmt.Sprintf("unknown timezone %q", fe.Value())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}
