package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"

	"expediente-admin/internal/service"
	"expediente-admin/pkg/response"
)

// maxJSONBody bounds product form submissions. Images are uploaded
// separately so the JSON never carries file data.
const maxJSONBody = 1 << 20

// decodeJSON reads the request body into dst and writes the error response
// itself when it cannot. A value of the wrong JSON type is reported against
// its field like any other format violation.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)

	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return true
	}

	var tooLarge *http.MaxBytesError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &tooLarge):
		response.Error(w, http.StatusRequestEntityTooLarge, "Request body is too large", nil)
	case errors.As(err, &typeErr) && typeErr.Field != "":
		writeProductError(w, &service.ValidationError{Errors: []service.FieldError{{
			Field:   typeErr.Field,
			Kind:    service.FormatViolation,
			Message: typeMessage(typeErr.Type),
		}}}, "Invalid request body")
	default:
		response.BadRequest(w, "Invalid request body")
	}
	return false
}

func typeMessage(t reflect.Type) string {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return "has the wrong type"
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "must be a whole number"
	case reflect.Float32, reflect.Float64:
		return "must be a number"
	case reflect.Bool:
		return "must be true or false"
	case reflect.String:
		return "must be a string"
	case reflect.Slice, reflect.Array:
		return "must be a list"
	default:
		return "has the wrong type"
	}
}
