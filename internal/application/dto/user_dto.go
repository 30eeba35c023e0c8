package dto

// LoginRequest entrada para POST /api/stock/login.
type LoginRequest struct {
	Nombre   string `json:"nombre"`
	Password string `json:"password"`
}

// UserResponse proyección pública de un usuario (el password nunca se devuelve).
type UserResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Rol    string `json:"rol"`
}

// LoginResponse salida del login exitoso.
type LoginResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}
