package response

import (
	"errors"
	"net/http"
	"strings"

	"github.com/bsthun/gut"
	"github.com/go-playground/validator/v10"
)

func HandleError(w http.ResponseWriter, err error) {
	// * case of `*response.Error`
	var handlerError *Error
	if errors.As(err, &handlerError) {
		_ = write(w, handlerError.Code, &ErrorResponse{
			Success: gut.Ptr(false),
			Message: &handlerError.Message,
		})
		return
	}

	// * case of `validator.ValidationErrors`
	var validatorErr validator.ValidationErrors
	if errors.As(err, &validatorErr) {
		var lists []string
		for _, err := range validatorErr {
			lists = append(lists, err.Field()+" ("+err.Tag()+")")
		}

		message := strings.Join(lists[:], ", ")

		_ = write(w, http.StatusBadRequest, &ErrorResponse{
			Success: gut.Ptr(false),
			Message: gut.Ptr("validation failed on " + message),
			Error:   gut.Ptr(validatorErr.Error()),
		})
		return
	}

	_ = write(w, http.StatusInternalServerError, &ErrorResponse{
		Success: gut.Ptr(false),
		Message: gut.Ptr("unknown server error"),
		Error:   gut.Ptr(err.Error()),
	})
}
