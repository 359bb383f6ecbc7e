package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"dogsapi/internal/apierror"
	"dogsapi/internal/locale"
)

// Handler wraps storage and the message catalog for all dog endpoints.
type Handler struct {
	Store    StorageInterface
	Catalog  *locale.Catalog
	validate *validator.Validate
}

func NewHandler(store StorageInterface, catalog *locale.Catalog) *Handler {
	return &Handler{Store: store, Catalog: catalog, validate: newValidator()}
}

// PingHandler answers "ok" for server health checks
func (h *Handler) PingHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// resolve localizes a catalog key for the caller's Accept-Language.
func (h *Handler) resolve(r *http.Request, key string, args map[string]interface{}) string {
	return h.Catalog.Resolve(r.Header.Get("Accept-Language"), key, args)
}

// writeError is the single boundary where every failure kind becomes the
// uniform error payload. Classification follows a fixed priority: field
// validation, bad enum token, bad date format, malformed body, not-found,
// then the generic 500 with the original error suppressed from the response.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		validationErr *apierror.ValidationError
		enumErr       *apierror.InvalidEnumError
		dateErr       *apierror.InvalidDateError
		malformedErr  *apierror.MalformedBodyError
		notFoundErr   *apierror.NotFoundError
	)
	switch {
	case errors.As(err, &validationErr):
		h.writeErrorResponse(w, r, http.StatusBadRequest, "", validationErr.Fields)

	case errors.As(err, &enumErr):
		msg := h.resolve(r, "error.invalid.enum", map[string]interface{}{
			"Value":   enumErr.Value,
			"Field":   enumErr.Field,
			"Allowed": enumErr.AllowedList(),
		})
		h.writeErrorResponse(w, r, http.StatusBadRequest, "",
			[]apierror.FieldError{{Field: enumErr.Field, Message: msg}})

	case errors.As(err, &dateErr):
		msg := h.resolve(r, "error.invalid.date", map[string]interface{}{"Field": dateErr.Field})
		h.writeErrorResponse(w, r, http.StatusBadRequest, "",
			[]apierror.FieldError{{Field: dateErr.Field, Message: msg}})

	case errors.As(err, &malformedErr):
		msg := h.resolve(r, "error.malformed.json", nil)
		h.writeErrorResponse(w, r, http.StatusBadRequest, "",
			[]apierror.FieldError{{Field: "requestBody", Message: msg}})

	case errors.As(err, &notFoundErr):
		h.writeErrorResponse(w, r, http.StatusNotFound, h.resolve(r, notFoundErr.Key, notFoundErr.Args), nil)

	default:
		log.Error().Err(err).Str("path", r.URL.Path).Msg("unhandled error")
		h.writeErrorResponse(w, r, http.StatusInternalServerError, h.resolve(r, "internal.server.error", nil), nil)
	}
}

func (h *Handler) writeErrorResponse(w http.ResponseWriter, r *http.Request, status int, message string, fields []apierror.FieldError) {
	writeJSON(w, status, apierror.Response{
		Timestamp:   time.Now(),
		Status:      status,
		Error:       http.StatusText(status),
		Message:     message,
		FieldErrors: fields,
		Path:        r.URL.Path,
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
