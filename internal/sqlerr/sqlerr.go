// Package sqlerr classifies SQLite driver errors into a small set of codes
// callers can switch on without importing the driver.
package sqlerr

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/mattn/go-sqlite3"
)

// Code is the category of a database error.
type Code int

const (
	Other Code = iota
	UniqueViolation
	NotNullViolation
	CheckViolation
	ForeignKeyViolation
	Busy
	ConnectionClosed
)

var codeNames = map[Code]string{
	Other:               "other",
	UniqueViolation:     "unique_violation",
	NotNullViolation:    "not_null_violation",
	CheckViolation:      "check_violation",
	ForeignKeyViolation: "foreign_key_violation",
	Busy:                "busy",
	ConnectionClosed:    "connection_closed",
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return codeNames[Other]
}

// IsConstraint reports whether c is one of the constraint violations.
func (c Code) IsConstraint() bool {
	switch c {
	case UniqueViolation, NotNullViolation, CheckViolation, ForeignKeyViolation:
		return true
	}
	return false
}

// Classify maps err to a Code.
//
// Behavior:
//   - sqlite3.Error: mapped from its extended result code, falling back to
//     the primary code.
//   - sql.ErrConnDone / sql.ErrTxDone: ConnectionClosed.
//   - anything else, including nil: Other.
func Classify(err error) Code {
	if err == nil {
		return Other
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return UniqueViolation
		case sqlite3.ErrConstraintNotNull:
			return NotNullViolation
		case sqlite3.ErrConstraintCheck:
			return CheckViolation
		case sqlite3.ErrConstraintForeignKey:
			return ForeignKeyViolation
		}

		switch liteErr.Code {
		case sqlite3.ErrBusy, sqlite3.ErrLocked:
			return Busy
		}
		return Other
	}

	if errors.Is(err, sql.ErrConnDone) || errors.Is(err, sql.ErrTxDone) {
		return ConnectionClosed
	}
	// Matches the message of database/sql's unexported errDBClosed, returned
	// by every call on a *sql.DB after Close. There is no exported sentinel.
	if strings.Contains(err.Error(), "sql: database is closed") {
		return ConnectionClosed
	}

	return Other
}
