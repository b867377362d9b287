package utils

import (
	"reflect"
)

// ApplyUpdates copies every non-nil pointer field of src onto the matching
// field of dst and reports whether anything actually changed. It is how the
// partial-update DTOs are folded into a loaded entity before persisting.
func ApplyUpdates(dst interface{}, src interface{}) bool {
	dstVal := reflect.ValueOf(dst).Elem()
	srcVal := reflect.ValueOf(src).Elem()

	hasChanges := false

	for i := 0; i < srcVal.NumField(); i++ {
		srcField := srcVal.Field(i)
		fieldName := srcVal.Type().Field(i).Name

		if srcField.Kind() == reflect.Ptr && srcField.IsNil() {
			continue
		}

		dstField := dstVal.FieldByName(fieldName)
		if !dstField.IsValid() || !dstField.CanSet() {
			continue
		}

		if dstField.Kind() == reflect.Ptr {
			if srcField.Kind() == reflect.Ptr {
				if dstField.IsNil() || dstField.Elem().Interface() != srcField.Elem().Interface() {
					dstField.Set(srcField)
					hasChanges = true
				}
			}
			continue
		}

		if srcField.Kind() == reflect.Ptr {
			val := srcField.Elem()
			if !val.Type().AssignableTo(dstField.Type()) {
				// named string types (statuses, categories, roles)
				if val.Kind() == dstField.Kind() && val.Type().ConvertibleTo(dstField.Type()) {
					val = val.Convert(dstField.Type())
				} else {
					continue
				}
			}
			if !reflect.DeepEqual(dstField.Interface(), val.Interface()) {
				dstField.Set(val)
				hasChanges = true
			}
			continue
		}

		if srcField.Type().AssignableTo(dstField.Type()) {
			if !reflect.DeepEqual(dstField.Interface(), srcField.Interface()) {
				dstField.Set(srcField)
				hasChanges = true
			}
		}
	}
	return hasChanges
}
