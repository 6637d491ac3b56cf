package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/hotel-services/internal/httperr"
)

// notFound maps a missing row onto the given not_found code.
func notFound(err error, code string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrNotFound(code)
	}
	return err
}

// isUniqueViolation recognises duplicate keys across the supported drivers,
// whether or not gorm translated the error.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1062
	}

	return false
}

func conflict(err error, code string) error {
	if isUniqueViolation(err) {
		return httperr.ErrConflict(code)
	}
	return err
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
