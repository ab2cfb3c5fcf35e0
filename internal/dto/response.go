package dto

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{
		Error: message,
	}
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
