package dto

// ErrorResponse cuerpo de error HTTP. Message es siempre un texto genérico:
// el detalle del fallo solo va al log del servidor.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse cuerpo de éxito con mensaje.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreatedResponse cuerpo de éxito de la inserción simple, con el ID asignado.
type CreatedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}
