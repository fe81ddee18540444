package dto

// Response envoltorio estándar de respuestas exitosas: {success, message, id|record|data}.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	ID      string `json:"id,omitempty"`
	Record  any    `json:"record,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// ErrorResponse cuerpo de error HTTP. Errors lleva los mensajes por campo en errores de validación.
type ErrorResponse struct {
	Success bool              `json:"success"`
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// OK construye una respuesta exitosa con data.
func OK(message string, data any) Response {
	return Response{Success: true, Message: message, Data: data}
}

// Fail construye una respuesta de error.
func Fail(code, message string) ErrorResponse {
	return ErrorResponse{Success: false, Code: code, Message: message}
}

// Caller identidad autenticada que ejecuta una operación (extraída del JWT).
type Caller struct {
	UserID   string
	Username string
	Role     string
}

// DateRangeQuery filtro opcional ?startDate=&endDate= (AAAA-MM-DD).
type DateRangeQuery struct {
	StartDate string `query:"startDate" json:"startDate" validate:"omitempty,date"`
	EndDate   string `query:"endDate" json:"endDate" validate:"omitempty,date"`
}
