// Package apierror renders failures as RFC 9457 problem details.
package apierror

// ProblemDetails is an RFC 9457 problem response with the API's extension members.
type ProblemDetails struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`

	RequestID   string       `json:"request_id,omitempty"`
	UserMessage string       `json:"user_message,omitempty"` // safe to show in the journal app
	RetryAfter  *int         `json:"retry_after,omitempty"`  // seconds, mirrored in the Retry-After header
	Action      string       `json:"action,omitempty"`
	Errors      []FieldError `json:"errors,omitempty"`
}

// FieldError is one failed field of a validation problem.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func (p *ProblemDetails) Error() string {
	if p.Detail != "" {
		return p.Detail
	}
	return p.Title
}
