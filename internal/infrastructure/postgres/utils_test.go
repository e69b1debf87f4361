package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "users_pkey"}

	assert.True(t, isUniqueViolation(dup))
	// También envuelto, como lo devuelven los repos
	assert.True(t, isUniqueViolation(fmt.Errorf("insert user: %w", dup)))

	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}), "violación de FK no es duplicado")
	assert.False(t, isUniqueViolation(errors.New("conexión rechazada")))
	assert.False(t, isUniqueViolation(nil))
}
