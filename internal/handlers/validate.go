package handlers

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"dogsapi/internal/apierror"
	"dogsapi/models"
)

// newValidator builds the struct validator used for all request payloads.
// Field names in error output come from json tags, and models.Date values are
// validated as their underlying time so the notfuture rule can apply.
func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(models.Date); ok {
			return d.Time
		}
		return nil
	}, models.Date{})

	// birthDate must not be in the future; the other date fields carry no
	// temporal constraint.
	_ = v.RegisterValidation("notfuture", func(fl validator.FieldLevel) bool {
		t, ok := fl.Field().Interface().(time.Time)
		if !ok {
			return true
		}
		return !t.After(time.Now())
	})

	return v
}

// checkStruct runs structural validation and converts any failures into the
// ordered field-error list, localized per request.
func (h *Handler) checkStruct(r *http.Request, v interface{}) error {
	err := h.validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]apierror.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, apierror.FieldError{Field: fe.Field(), Message: h.fieldMessage(r, fe)})
	}
	return &apierror.ValidationError{Fields: fields}
}

func (h *Handler) fieldMessage(r *http.Request, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return h.resolve(r, "field.required", nil)
	case "max":
		if fe.Kind() == reflect.String {
			return h.resolve(r, "invalid.field.length", map[string]interface{}{"Max": fe.Param()})
		}
		return h.resolve(r, "error.number.max", map[string]interface{}{"Max": fe.Param()})
	case "min":
		return h.resolve(r, "error.number.min", map[string]interface{}{"Min": fe.Param()})
	case "notfuture":
		return h.resolve(r, "error.date.pastorpresent", nil)
	}
	return h.resolve(r, "error.invalid.value", nil)
}
