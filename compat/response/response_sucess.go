package response

import (
	"encoding/json"
	"net/http"

	"github.com/bsthun/gut"
)

type SuccessResponse struct {
	Success *bool   `json:"success"`
	Code    *string `json:"code,omitempty"`
	Message *string `json:"message,omitempty"`
	Data    any     `json:"data,omitempty"`
}

// GenericResponse is the typed form of the success envelope, for callers
// decoding a response body into a concrete data type.
type GenericResponse[T any] struct {
	Success *bool   `json:"success"`
	Code    *string `json:"code,omitempty"`
	Message *string `json:"message,omitempty"`
	Data    T       `json:"data,omitempty"`
}

// Success writes a success envelope. A leading string argument becomes the
// message, a second string promotes the first to a code.
func Success(w http.ResponseWriter, args1 any, args2 ...any) error {
	if message, ok := args1.(string); ok {
		if len(args2) == 0 {
			return write(w, http.StatusOK, &SuccessResponse{
				Success: gut.Ptr(true),
				Message: &message,
			})
		}
		if message2, ok := args2[0].(string); ok {
			return write(w, http.StatusOK, &SuccessResponse{
				Success: gut.Ptr(true),
				Code:    &message,
				Message: &message2,
			})
		}
		return write(w, http.StatusOK, &SuccessResponse{
			Success: gut.Ptr(true),
			Message: &message,
			Data:    args2[0],
		})
	}
	return write(w, http.StatusOK, &SuccessResponse{
		Success: gut.Ptr(true),
		Data:    args1,
	})
}

func write(w http.ResponseWriter, status int, payload any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(payload)
}
