package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los handlers los discriminan con errors.Is; ErrStorage envuelve fallas de
// infraestructura (conexión, commit) y nunca expone el detalle interno al cliente.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrStorage           = errors.New("error de almacenamiento")
)
