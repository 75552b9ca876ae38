// Package student contains the HTTP handlers for the Student resource.
//
// Every handler is built by a factory that receives its dependencies and
// returns the func(http.ResponseWriter, *http.Request) the router needs:
//
//	router.HandleFunc("POST /api/students", student.New(storage))
//
// New(storage) runs once at startup; the returned closure runs per request.
package student

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/student-store/internal/storage"
	"github.com/aanand-mishra/student-store/internal/types"
	"github.com/aanand-mishra/student-store/internal/utils/response"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// New handles POST /api/students
//
// Request body:
//
//	{ "name": "Alice", "score": 88.5, "birthday": "2000-01-01" }
//
// Success response (201 Created):
//
//	{ "id": 1, "affected": 1 }
func New(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating a student")

		student, ok := decodeStudent(w, r)
		if !ok {
			return
		}

		affected, err := storage.Save(r.Context(), &student)
		if err != nil {
			writeStorageError(w, "error creating student", err)
			return
		}

		slog.Info("student created", slog.Int64("id", student.ID))
		response.WriteJSON(w, http.StatusCreated, map[string]int64{
			"id":       student.ID,
			"affected": affected,
		})
	}
}

// GetByID handles GET /api/students/{id}
//
// 404 when no student has the id.
func GetByID(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}
		slog.Info("getting a student", slog.Int64("id", id))

		student, err := storage.FindByID(r.Context(), id)
		if err != nil {
			writeStorageError(w, "error getting student", err)
			return
		}

		response.WriteJSON(w, http.StatusOK, student)
	}
}

// GetList handles GET /api/students
// Returns [] (not null) when there are no students.
func GetList(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("getting all students")

		students, err := storage.FindAll(r.Context())
		if err != nil {
			writeStorageError(w, "error getting students", err)
			return
		}

		response.WriteJSON(w, http.StatusOK, students)
	}
}

// Update handles PUT /api/students/{id}
// Replaces name, score and birthday and responds with the stored record.
func Update(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}
		slog.Info("updating a student", slog.Int64("id", id))

		student, ok := decodeStudent(w, r)
		if !ok {
			return
		}
		student.ID = id

		affected, err := storage.Update(r.Context(), student)
		if err != nil {
			writeStorageError(w, "error updating student", err)
			return
		}
		if affected == 0 {
			response.WriteJSON(w, http.StatusNotFound,
				response.GeneralError(fmt.Errorf("no student found with id: %d", id)))
			return
		}

		updated, err := storage.FindByID(r.Context(), id)
		if err != nil {
			writeStorageError(w, "error reading updated student", err)
			return
		}

		slog.Info("student updated", slog.Int64("id", id))
		response.WriteJSON(w, http.StatusOK, updated)
	}
}

// Delete handles DELETE /api/students/{id}
//
// Success response (200 OK):
//
//	{ "status": "deleted", "affected": 1 }
func Delete(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}
		slog.Info("deleting a student", slog.Int64("id", id))

		affected, err := storage.DeleteByID(r.Context(), id)
		if err != nil {
			writeStorageError(w, "error deleting student", err)
			return
		}
		if affected == 0 {
			response.WriteJSON(w, http.StatusNotFound,
				response.GeneralError(fmt.Errorf("no student found with id: %d", id)))
			return
		}

		slog.Info("student deleted", slog.Int64("id", id))
		response.WriteJSON(w, http.StatusOK, map[string]any{
			"status":   "deleted",
			"affected": affected,
		})
	}
}

// parseID reads the {id} path value. On failure it writes a 400 and
// returns false.
func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		response.WriteJSON(w, http.StatusBadRequest,
			response.GeneralError(errors.New("invalid id: must be an integer")))
		return 0, false
	}
	return id, true
}

// decodeStudent decodes and validates the request body. On failure it
// writes a 400 and returns false.
func decodeStudent(w http.ResponseWriter, r *http.Request) (types.Student, bool) {
	var student types.Student

	err := json.NewDecoder(r.Body).Decode(&student)
	if errors.Is(err, io.EOF) {
		response.WriteJSON(w, http.StatusBadRequest,
			response.GeneralError(errors.New("request body is empty")))
		return types.Student{}, false
	}
	if err != nil {
		response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
		return types.Student{}, false
	}

	if err := validate.Struct(student); err != nil {
		var validateErrs validator.ValidationErrors
		if errors.As(err, &validateErrs) {
			response.WriteJSON(w, http.StatusBadRequest, response.ValidationError(validateErrs))
		} else {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
		}
		return types.Student{}, false
	}

	return student, true
}

// writeStorageError maps repository errors to status codes:
// not found 404, constraint violation 409, anything else 500.
func writeStorageError(w http.ResponseWriter, msg string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, storage.ErrNotFound):
		status = http.StatusNotFound
	case storage.IsConstraintViolation(err):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		slog.Error(msg, slog.String("error", err.Error()))
	} else {
		slog.Info(msg, slog.String("error", err.Error()))
	}

	response.WriteJSON(w, status, response.GeneralError(err))
}
