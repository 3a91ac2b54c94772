// Package response provides helpers for writing consistent JSON HTTP
// responses. Every error a handler reports uses the same envelope, so API
// consumers always know what a failure looks like:
//
//	{ "status": "error", "error": "field Amount must be > 0" }
//
// Rejected guarded mutations (a withdrawal larger than the balance, a
// brake on a stopped car) are not errors and use types.Outcome instead.
package response

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/IvanLB1405/records-api/internal/storage"
)

// Response is the standard envelope returned for error cases.
type Response struct {
	Status string `json:"status"` // "ok" or "error"
	Error  string `json:"error"`
}

const (
	StatusOK    = "ok"
	StatusError = "error"
)

// WriteJSON encodes data, then sets the content type, writes status and
// the body. Header() → WriteHeader() → body: once WriteHeader runs,
// headers are locked, so data is encoded first. A value that cannot be
// encoded (e.g. a NaN float) is logged and answered with 500 instead of
// an empty body under the intended status.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(data); err != nil {
		slog.Error("cannot encode response",
			slog.Int("status", status),
			slog.String("error", err.Error()))

		buf.Reset()
		// Response only holds strings and always encodes.
		json.NewEncoder(&buf).Encode(GeneralError(fmt.Errorf("encode response: %w", err)))
		writeBody(w, http.StatusInternalServerError, buf.Bytes())
		return err
	}

	return writeBody(w, status, buf.Bytes())
}

func writeBody(w http.ResponseWriter, status int, body []byte) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err := w.Write(body)
	return err
}

// GeneralError wraps any Go error into the standard Response shape.
func GeneralError(err error) Response {
	return Response{
		Status: StatusError,
		Error:  err.Error(),
	}
}

// StorageError writes err with 404 when it wraps storage.ErrNotFound and
// 500 for everything else.
func StorageError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, storage.ErrNotFound) {
		status = http.StatusNotFound
	}
	WriteJSON(w, status, GeneralError(err))
}

var comparison = map[string]string{
	"gt":  ">",
	"gte": ">=",
	"lt":  "<",
	"lte": "<=",
}

// ValidationError turns the validator's per-field errors into one
// readable message joined with ", ":
//
//	{ "status": "error", "error": "field Owner is required, field Balance must be >= 0" }
func ValidationError(errs validator.ValidationErrors) Response {
	var errMessages []string

	for _, e := range errs {
		switch e.ActualTag() {
		case "required":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is required", e.Field()))
		case "gt", "gte", "lt", "lte":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must be %s %s", e.Field(), comparison[e.ActualTag()], e.Param()))
		case "min":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must have at least %s entries", e.Field(), e.Param()))
		default:
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is invalid", e.Field()))
		}
	}

	return Response{
		Status: StatusError,
		Error:  strings.Join(errMessages, ", "),
	}
}
