package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput   = "INVALID_INPUT"
	CodeValidation     = "VALIDATION_ERROR"
	CodeFileUnreadable = "FILE_UNREADABLE"
	CodeNotFound       = "NOT_FOUND"

	// Data-quality errors (422)
	CodeJoinIntegrity = "JOIN_INTEGRITY_ERROR"

	// Server errors (5xx)
	CodeInternalError = "INTERNAL_ERROR"
)
