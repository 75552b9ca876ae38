// Package repository implements storage.Storage on top of a generic SQL
// executor. It issues one parameterized statement per operation and maps
// rows to types.Student by column name.
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aanand-mishra/student-store/internal/storage"
	"github.com/aanand-mishra/student-store/internal/types"
)

const (
	queryFindAll  = "SELECT * FROM student"
	queryFindByID = "SELECT * FROM student WHERE id = ?"
	querySave     = "INSERT INTO student(name, score, birthday) VALUES (?, ?, ?)"
	queryUpdate   = "UPDATE student SET name = ?, score = ?, birthday = ? WHERE id = ?"
	queryDelete   = "DELETE FROM student WHERE id = ?"
)

// studentRow is the scan target for a student row. name and score are
// nullable in the schema; NULL reads back as the zero value.
type studentRow struct {
	ID       int64           `db:"id"`
	Name     sql.NullString  `db:"name"`
	Score    sql.NullFloat64 `db:"score"`
	Birthday types.Date      `db:"birthday"`
}

func (row studentRow) student() types.Student {
	return types.Student{
		ID:       row.ID,
		Name:     row.Name.String,
		Score:    row.Score.Float64,
		Birthday: row.Birthday,
	}
}

// StudentRepository is the student data-access object. It does not own
// the executor: opening and closing the connection is the caller's job.
type StudentRepository struct {
	exec Executor
}

var _ storage.Storage = (*StudentRepository)(nil)

// New returns a repository that runs its statements on exec.
func New(exec Executor) *StudentRepository {
	return &StudentRepository{exec: exec}
}

func (r *StudentRepository) FindAll(ctx context.Context) ([]types.Student, error) {
	rows, err := queryForList[studentRow](ctx, r.exec, "FindAll", queryFindAll)
	if err != nil {
		return nil, err
	}

	students := make([]types.Student, 0, len(rows))
	for _, row := range rows {
		students = append(students, row.student())
	}
	return students, nil
}

func (r *StudentRepository) FindByID(ctx context.Context, id int64) (types.Student, error) {
	row, err := queryForObject[studentRow](ctx, r.exec, "FindByID", queryFindByID, id)
	if err != nil {
		return types.Student{}, err
	}
	return row.student(), nil
}

// Save inserts the student. On success student.ID holds the id storage
// assigned to the new row.
func (r *StudentRepository) Save(ctx context.Context, student *types.Student) (int64, error) {
	result, affected, err := update(ctx, r.exec, "Save", querySave,
		student.Name, student.Score, student.Birthday)
	if err != nil {
		return 0, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, storage.NewDataAccessError("Save", fmt.Errorf("last insert id: %w", err))
	}
	student.ID = id

	return affected, nil
}

func (r *StudentRepository) Update(ctx context.Context, student types.Student) (int64, error) {
	// Argument order follows the placeholders: name, score, birthday, id.
	_, affected, err := update(ctx, r.exec, "Update", queryUpdate,
		student.Name, student.Score, student.Birthday, student.ID)
	return affected, err
}

func (r *StudentRepository) DeleteByID(ctx context.Context, id int64) (int64, error) {
	_, affected, err := update(ctx, r.exec, "DeleteByID", queryDelete, id)
	return affected, err
}
