package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "stock_records_pkey"}

	assert.True(t, isUniqueViolation(unique))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert stock: %w", unique)),
		"debe detectar el código aunque el error venga envuelto")
	assert.True(t, isUniqueViolation(errors.New("ERROR: duplicate key (SQLSTATE 23505)")))

	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}), "FK violation no es conflicto de unicidad")
	assert.False(t, isUniqueViolation(errors.New("connection refused")))
}
