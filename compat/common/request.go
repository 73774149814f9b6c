package common

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.reef.dev/open/fin/compat/response"
)

var validate = validator.New()

// Bind reads the request body into v and validates it against its `validate`
// struct tags. Validation failures surface as validator.ValidationErrors so
// HandleError can list the failing fields.
func Bind(r *http.Request, v any) error {
	// * read body
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "unable to read request body")
	}
	if len(data) == 0 {
		return response.NewError(http.StatusBadRequest, "request body is empty")
	}

	// * decode body
	if err := json.Unmarshal(data, v); err != nil {
		return response.NewError(http.StatusBadRequest, "unable to decode request body")
	}

	// * validate body
	if err := validate.Struct(v); err != nil {
		return err
	}

	return nil
}
