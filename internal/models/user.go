package models

// User representa la sesión activa de un usuario autenticado.
// Solo se persiste el email; las credenciales viven en el registro aparte.
type User struct {
	Email string `json:"email"`
}

// Credentials es el registro de credenciales: email -> hash bcrypt.
// Las claves son sensibles a mayúsculas y no se normalizan.
type Credentials map[string]string
