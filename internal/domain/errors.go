package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrConflict     = errors.New("conflicto con el estado actual")
)

// ValidationError agrupa todos los errores de campo detectados antes de una escritura.
// Nada se persiste cuando se devuelve este error. errors.Is(err, ErrInvalidInput) es true.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

// NewValidationError construye el error con el mensaje estándar de validación.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Message: "data does not pass validation", Fields: fields}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return e.Message + " (" + strings.Join(parts, "; ") + ")"
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// FieldErrors acumula errores por campo; el último mensaje de un campo prevalece.
type FieldErrors map[string]string

// Add registra el mensaje para el campo.
func (f FieldErrors) Add(field, msg string) { f[field] = msg }

// Err devuelve nil si no hay errores o un *ValidationError con todos ellos.
func (f FieldErrors) Err() error {
	if len(f) == 0 {
		return nil
	}
	return NewValidationError(f)
}

// AsValidation extrae el *ValidationError de la cadena de errores, si existe.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
