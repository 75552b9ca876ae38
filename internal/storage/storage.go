// Package storage defines the contract that any student store must satisfy,
// together with the errors it reports.
//
// Handlers depend only on this interface, so they can be tested against a
// fake and the backing database can change without touching them.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/aanand-mishra/student-store/internal/sqlerr"
	"github.com/aanand-mishra/student-store/internal/types"
)

// Storage is the student data-access contract.
type Storage interface {
	// FindAll returns every student in storage order.
	// Returns an empty slice (not nil) if there are no students.
	FindAll(ctx context.Context) ([]types.Student, error)

	// FindByID returns the single student with the given id.
	// Returns ErrNotFound when nothing matches and ErrMultipleResults when
	// the id is not unique.
	FindByID(ctx context.Context, id int64) (types.Student, error)

	// Save inserts name, score and birthday as a new row and returns the
	// number of rows affected. The id assigned by storage is written back
	// into student.ID; any id passed in is ignored.
	Save(ctx context.Context, student *types.Student) (int64, error)

	// Update overwrites name, score and birthday of the row with
	// student.ID and returns the number of rows affected (0 or 1).
	Update(ctx context.Context, student types.Student) (int64, error)

	// DeleteByID removes the row with the given id and returns the number
	// of rows affected. A missing id is not an error.
	DeleteByID(ctx context.Context, id int64) (int64, error)
}

var (
	// ErrNotFound is returned by single-row lookups that match no row.
	ErrNotFound = errors.New("student not found")

	// ErrMultipleResults is returned by single-row lookups that match more
	// than one row.
	ErrMultipleResults = errors.New("query returned more than one student")
)

// DataAccessError wraps any failure coming from the connection or from
// statement execution.
type DataAccessError struct {
	// Op is the repository operation that failed, e.g. "FindByID".
	Op string
	// Code classifies the underlying driver error.
	Code sqlerr.Code
	Err  error
}

// NewDataAccessError wraps err for operation op and classifies it.
func NewDataAccessError(op string, err error) *DataAccessError {
	return &DataAccessError{Op: op, Code: sqlerr.Classify(err), Err: err}
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("%s: data access (%s): %v", e.Op, e.Code, e.Err)
}

func (e *DataAccessError) Unwrap() error {
	return e.Err
}

// IsConstraintViolation reports whether err is a DataAccessError caused by
// a violated table constraint.
func IsConstraintViolation(err error) bool {
	var dae *DataAccessError
	return errors.As(err, &dae) && dae.Code.IsConstraint()
}
