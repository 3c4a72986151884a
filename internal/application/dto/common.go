package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SuccessResponse cuerpo mínimo de confirmación para operaciones sin payload.
type SuccessResponse struct {
	Success bool `json:"success"`
}
