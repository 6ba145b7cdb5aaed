package domain

import (
	"errors"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound               = errors.New("recurso no encontrado")
	ErrInvalidInput           = errors.New("entrada inválida")
	ErrDuplicate              = errors.New("recurso duplicado")
	ErrForbidden              = errors.New("acceso denegado")
	ErrConflict               = errors.New("conflicto con el estado actual")
	ErrInsufficientStock      = errors.New("stock insuficiente")
	ErrThresholdNotConfigured = errors.New("umbral de stock mínimo no configurado")
)

// ValidationError entrada inválida con la lista de campos afectados.
// Los handlers HTTP la traducen a 400 incluyendo Fields en el cuerpo.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return ErrInvalidInput.Error() + ": " + strings.Join(e.Fields, ", ")
}

// Unwrap permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// NewValidationError construye un ValidationError con los campos faltantes o mal formados.
func NewValidationError(fields ...string) error {
	if len(fields) == 0 {
		return ErrInvalidInput
	}
	return &ValidationError{Fields: fields}
}
