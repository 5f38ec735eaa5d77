package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// ErrCycleDetected la nueva categoría padre es descendiente del propio nodo.
	ErrCycleDetected = errors.New("la categoría padre es descendiente de la categoría")

	// ErrPropagationFailed todos los pares (sucursal, método) de un lote fallaron.
	// Un fallo parcial NO produce este error: se reporta par a par en el resultado.
	ErrPropagationFailed = errors.New("la propagación falló en todas las sucursales")
)
