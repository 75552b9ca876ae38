package sqlerr_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"

	"github.com/aanand-mishra/student-store/internal/sqlerr"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want sqlerr.Code
	}{
		{"nil", nil, sqlerr.Other},
		{"plain error", errors.New("boom"), sqlerr.Other},
		{"unique", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, sqlerr.UniqueViolation},
		{"primary key", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}, sqlerr.UniqueViolation},
		{"not null", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}, sqlerr.NotNullViolation},
		{"check", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintCheck}, sqlerr.CheckViolation},
		{"foreign key", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}, sqlerr.ForeignKeyViolation},
		{"busy", sqlite3.Error{Code: sqlite3.ErrBusy}, sqlerr.Busy},
		{"locked", sqlite3.Error{Code: sqlite3.ErrLocked}, sqlerr.Busy},
		{"wrapped unique", fmt.Errorf("Save: exec: %w", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}), sqlerr.UniqueViolation},
		{"conn done", fmt.Errorf("x: %w", sql.ErrConnDone), sqlerr.ConnectionClosed},
		{"other sqlite error", sqlite3.Error{Code: sqlite3.ErrError}, sqlerr.Other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sqlerr.Classify(tt.err))
		})
	}
}

func TestCodeIsConstraint(t *testing.T) {
	assert.True(t, sqlerr.UniqueViolation.IsConstraint())
	assert.True(t, sqlerr.NotNullViolation.IsConstraint())
	assert.True(t, sqlerr.CheckViolation.IsConstraint())
	assert.True(t, sqlerr.ForeignKeyViolation.IsConstraint())
	assert.False(t, sqlerr.Busy.IsConstraint())
	assert.False(t, sqlerr.Other.IsConstraint())
}

func TestCodeString(t *testing.T) {
	assert.Equal(t, "unique_violation", sqlerr.UniqueViolation.String())
	assert.Equal(t, "other", sqlerr.Code(99).String())
}

func TestClassifyClosedDatabase(t *testing.T) {
	err := fmt.Errorf("select: %w", errors.New("sql: database is closed"))
	assert.Equal(t, sqlerr.ConnectionClosed, sqlerr.Classify(err))
}
