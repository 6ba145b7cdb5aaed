package postgres

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// isValidID verifica que un id tenga forma de UUID antes de usarlo como
// parámetro de una columna uuid. Un id malformado no puede existir en la
// tabla: los lookups lo tratan como no encontrado en vez de dejar que pgx
// falle al codificarlo.
func isValidID(id string) bool {
	return uuid.Validate(id) == nil
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
// Es la vía por la que se detecta el SKU duplicado: el constraint decide, no la app.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}
