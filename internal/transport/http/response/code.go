package response

// Stable error codes exposed by the API.
const (
	CodeNotFound   = "NOT_FOUND"
	CodeDuplicate  = "DUPLICATE_ERROR"
	CodeValidation = "VALIDATION_ERROR"
	CodeServer     = "SERVER_ERROR"
)
