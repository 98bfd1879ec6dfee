package repository

import "errors"

var (
	ErrUserAlreadyExists  = errors.New("el email ya está registrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrPlanNotFound       = errors.New("no hay plan para el día seleccionado")
)
