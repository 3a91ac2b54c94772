// Package request holds the decode-and-validate steps every handler runs
// before touching storage. Each helper writes the 400 response itself and
// reports whether the handler may continue.
package request

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/IvanLB1405/records-api/internal/utils/response"
)

// validate caches struct metadata, so one instance is shared by all
// handlers. It is safe for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

var (
	ErrEmptyBody = errors.New("request body is empty")
	ErrInvalidID = errors.New("invalid id: must be an integer")
)

// Decode reads the JSON body into v and checks its validate:"..." tags.
//
//	empty body        → 400 "request body is empty"
//	malformed JSON    → 400 with the decoder's message
//	failed validation → 400 listing every failing field
func Decode(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(ErrEmptyBody))
		return false
	}
	if err != nil {
		response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
		return false
	}

	if err := validate.Struct(v); err != nil {
		var validateErrs validator.ValidationErrors
		if errors.As(err, &validateErrs) {
			response.WriteJSON(w, http.StatusBadRequest, response.ValidationError(validateErrs))
			return false
		}
		response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
		return false
	}

	return true
}

// PathID parses the {id} segment of a Go 1.22 ServeMux pattern such as
// "GET /api/accounts/{id}".
func PathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(ErrInvalidID))
		return 0, false
	}
	return id, true
}
