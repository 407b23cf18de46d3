package apierror

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/JonnyWalker81/mindjournal/backend/internal/repository"
	"github.com/JonnyWalker81/mindjournal/backend/internal/service"
)

const unavailableRetrySeconds = 5

// FromError maps a service error to a problem. Missing records become 404, duplicate
// creates 409, rejected input 400 and a timed out upstream 503. Everything else is a
// 500 that hides the cause.
func FromError(requestID, resource string, err error) *ProblemDetails {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return NewNotFoundError(requestID, resource, "")
	case errors.Is(err, repository.ErrConflict):
		return NewConflictError(requestID, fmt.Sprintf("%s already exists", resource))
	case errors.Is(err, service.ErrInvalidInput):
		return NewBadRequestError(requestID, invalidInputDetail(err), "Please check your input and try again")
	case errors.Is(err, context.DeadlineExceeded):
		return NewServiceUnavailableError(requestID, unavailableRetrySeconds)
	default:
		return NewInternalError(requestID)
	}
}

// invalidInputDetail strips the wrapping so the detail reads "days must not be
// negative" rather than "invalid input: days must not be negative".
func invalidInputDetail(err error) string {
	msg := err.Error()
	if i := strings.LastIndex(msg, service.ErrInvalidInput.Error()+": "); i >= 0 {
		return msg[i+len(service.ErrInvalidInput.Error())+2:]
	}
	return msg
}

// FromBindError converts a gin binding failure. Validator failures list every
// failed field; anything else, such as malformed JSON, is a plain bad request.
func FromBindError(requestID string, err error) *ProblemDetails {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return NewBadRequestError(requestID, "Request body could not be parsed", "The request was malformed")
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{
			Field:   snakeCase(fe.Field()),
			Message: fieldMessage(fe),
			Code:    fe.Tag(),
		})
	}
	return NewValidationError(requestID, fields)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of " + fe.Param()
	default:
		return "is invalid"
	}
}

func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
