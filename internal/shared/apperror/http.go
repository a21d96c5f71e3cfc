package apperror

import "errors"

// HTTPError is the transport view of an error: what the handler writes back.
type HTTPError struct {
	Status  int
	Code    string
	Message string
}

// ToHTTP resolves err to the status and message a client may see.
// Errors that are not an *AppError are collapsed into ErrInternal so that
// store and runtime details never leave the process.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
		}
	}
	return HTTPError{
		Status:  ErrInternal.HTTPStatus,
		Code:    ErrInternal.Code,
		Message: ErrInternal.Message,
	}
}
