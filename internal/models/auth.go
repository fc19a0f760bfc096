package models

// LoginRequest carries the credentials posted to /api/auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RolInfo is the role projection embedded in a login response.
type RolInfo struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
}

// LoginResponse is the minimal user projection returned on success. Rol is
// null when the referenced role row cannot be found. Token is a signed JWT
// added on top of the documented fields.
type LoginResponse struct {
	ID        int      `json:"id"`
	Username  string   `json:"username"`
	Nombres   string   `json:"nombres"`
	Apellidos string   `json:"apellidos"`
	Rol       *RolInfo `json:"rol"`
	Token     string   `json:"token,omitempty"`
}
