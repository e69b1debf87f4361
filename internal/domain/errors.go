package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrUsernameTaken   = errors.New("el username ya está registrado")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrInactiveUser    = errors.New("usuario inactivo")
	ErrInvalidQuantity = errors.New("la cantidad debe ser un entero positivo")
)

// DanglingReferenceError indica una clave foránea que no apunta a ninguna fila existente.
// Field es el nombre del campo en el payload (ej. "idAsesor") y Value el valor recibido.
type DanglingReferenceError struct {
	Field string
	Value string
}

func (e *DanglingReferenceError) Error() string {
	return fmt.Sprintf("%s no encontrado: %q", e.Field, e.Value)
}

// NewDanglingReference construye el error de referencia colgante.
func NewDanglingReference(field, value string) *DanglingReferenceError {
	return &DanglingReferenceError{Field: field, Value: value}
}

// IsDanglingReference informa si err (o su cadena) es una referencia colgante.
func IsDanglingReference(err error) (*DanglingReferenceError, bool) {
	var dr *DanglingReferenceError
	if errors.As(err, &dr) {
		return dr, true
	}
	return nil, false
}
