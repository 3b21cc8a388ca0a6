package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrUnsupportedFormat = errors.New("formato de exportación no soportado")
)
