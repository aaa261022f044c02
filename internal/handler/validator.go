package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/FreshMeal_Go/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var (
	validate     *Validator
	validateOnce sync.Once
)

// InitValidator builds the shared validator with the planner's custom tags
func InitValidator() {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		// Report fields by their JSON names
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})

		_ = v.RegisterValidation("mealslot", validateMealSlot)
		_ = v.RegisterValidation("isodate", validateISODate)
		_ = v.RegisterValidation("shopcategory", validateShoppingCategory)

		validate = &Validator{validate: v}
	})
}

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	InitValidator()
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s any) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a field -> message map
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "mealslot":
			errs[field] = domain.ErrMsgInvalidMealSlot
		case "isodate":
			errs[field] = domain.ErrMsgInvalidDate
		case "shopcategory":
			errs[field] = domain.ErrMsgInvalidCategory
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "gte", "gt":
			errs[field] = fmt.Sprintf("Must be greater than or equal to %s", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// Empty values pass the custom tags; pair them with "required" when needed.

func validateMealSlot(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, err := domain.ParseMealSlot(s)
	return err == nil
}

func validateISODate(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, err := domain.ParseDate(s)
	return err == nil
}

func validateShoppingCategory(fl validator.FieldLevel) bool {
	_, err := domain.NormalizeCategory(fl.Field().String())
	return err == nil
}
