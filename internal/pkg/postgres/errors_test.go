package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	err := &pgconn.PgError{Code: "23505", ConstraintName: "user_email_key"}

	assert.True(t, IsUniqueViolation(err, ""))
	assert.True(t, IsUniqueViolation(err, "user_email_key"))
	assert.False(t, IsUniqueViolation(err, "store_name_key"))
	assert.False(t, IsUniqueViolation(errors.New("plain"), ""))
}

func TestIsUniqueViolation_Wrapped(t *testing.T) {
	err := fmt.Errorf("create user: %w", &pgconn.PgError{Code: "23505"})

	assert.True(t, IsUniqueViolation(err, ""))
}

func TestIsForeignKeyViolation(t *testing.T) {
	err := &pgconn.PgError{Code: "23503", ConstraintName: "rating_store_id_fkey"}

	assert.True(t, IsForeignKeyViolation(err, ""))
	assert.True(t, IsForeignKeyViolation(err, "rating_store_id_fkey"))
	assert.False(t, IsForeignKeyViolation(err, "rating_user_id_fkey"))
	assert.False(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23505"}, ""))
}
