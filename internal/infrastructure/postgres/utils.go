package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Código SQLSTATE de Postgres para violación de constraint UNIQUE.
const uniqueViolationCode = "23505"

// isUniqueViolation informa si err (o su cadena) es una violación de UNIQUE.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
