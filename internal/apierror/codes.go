package apierror

// Problem type URNs, used as the "type" member of a problem response.
const (
	TypeValidation   = "urn:mindjournal:error:validation"
	TypeBadRequest   = "urn:mindjournal:error:bad_request"
	TypeNotFound     = "urn:mindjournal:error:not_found"
	TypeConflict     = "urn:mindjournal:error:conflict"
	TypeRateLimit    = "urn:mindjournal:error:rate_limit"
	TypeUnauthorized = "urn:mindjournal:error:unauthorized"
	TypeInvalidUUID  = "urn:mindjournal:error:invalid_uuid"
	TypeInternal     = "urn:mindjournal:error:internal"
	TypeUnavailable  = "urn:mindjournal:error:unavailable"
)

const (
	TitleValidation   = "Validation Error"
	TitleBadRequest   = "Bad Request"
	TitleNotFound     = "Resource Not Found"
	TitleConflict     = "Resource Conflict"
	TitleRateLimit    = "Rate Limit Exceeded"
	TitleUnauthorized = "Authentication Required"
	TitleInvalidUUID  = "Invalid UUID"
	TitleInternal     = "Internal Server Error"
	TitleUnavailable  = "Service Unavailable"
)
