package response

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong"
	ErrorCodeBadRequest     = 1
	InternalServerErrorCode = 500
)
