package customvalidator

import (
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations wires our custom rules into the validator
// instance used by the echo binding layer.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("isodate", isISODate); err != nil {
		return err
	}
	if err := v.RegisterValidation("preventive_schedule", isPreventiveOnlySchedule); err != nil {
		return err
	}
	return nil
}

// isISODate accepts calendar dates in the 2006-01-02 form.
func isISODate(fl validator.FieldLevel) bool {
	value := fieldString(fl.Field())
	if value == "" {
		return true
	}
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}

// isPreventiveOnlySchedule rejects a scheduled date on anything but a
// Preventive request. Looks at the sibling Type field of the same DTO.
func isPreventiveOnlySchedule(fl validator.FieldLevel) bool {
	value := fieldString(fl.Field())
	if value == "" {
		return true
	}

	typeField := fl.Parent().FieldByName("Type")
	if !typeField.IsValid() {
		return false
	}
	return fieldString(typeField) == "Preventive"
}

func fieldString(field reflect.Value) string {
	switch field.Kind() {
	case reflect.String:
		return field.String()
	case reflect.Ptr:
		if field.IsNil() {
			return ""
		}
		return fieldString(field.Elem())
	default:
		return ""
	}
}
