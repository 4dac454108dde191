package usecase

// DomainError is a business-rule refusal: the request was understood and
// rejected. Handlers map these to 4xx responses by code.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

// TechnicalError is an infrastructure failure the caller could not have
// prevented.
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}

// Error codes shared between usecases and the HTTP layer.
const (
	CodeValidation    = "VALIDATION_ERROR"
	CodeLeadNotFound  = "LEAD_NOT_FOUND"
	CodeInvalidStatus = "INVALID_STATUS"
	CodeAIBusy        = "AI_REQUEST_IN_FLIGHT"
	CodeForbidden     = "ROLE_FORBIDDEN"
	CodeQueueDown     = "QUEUE_UNAVAILABLE"
	CodeEmptyDraft    = "EMPTY_DRAFT"
	CodeDatabase      = "DATABASE_ERROR"
)
