package response

type ErrorResponse struct {
	Success *bool   `json:"success"`
	Message *string `json:"message,omitempty"`
	Error   *string `json:"error,omitempty"`
}

// Error carries an http status code alongside a message so handlers can
// return it and let HandleError render the response.
type Error struct {
	Code    int
	Message string
}

func (r *Error) Error() string {
	return r.Message
}

// NewError constructs a status-carrying handler error.
func NewError(code int, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}
