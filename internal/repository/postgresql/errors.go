package postgresql

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation, assigning the underlying error to *target when it is.
func isUniqueViolation(err error, target **pgconn.PgError) bool {
	if errors.As(err, target) {
		return (*target).Code == "23505"
	}
	return false
}
