package student

import (
	"net/http"

	"github.com/aanand-mishra/student-store/internal/storage"
)

// Routes registers the student handlers on a new ServeMux.
//
//	POST   /api/students        create a student
//	GET    /api/students        list all students
//	GET    /api/students/{id}   get one student by id
//	PUT    /api/students/{id}   update a student
//	DELETE /api/students/{id}   delete a student
func Routes(storage storage.Storage) *http.ServeMux {
	router := http.NewServeMux()

	router.HandleFunc("POST /api/students", New(storage))
	router.HandleFunc("GET /api/students", GetList(storage))
	router.HandleFunc("GET /api/students/{id}", GetByID(storage))
	router.HandleFunc("PUT /api/students/{id}", Update(storage))
	router.HandleFunc("DELETE /api/students/{id}", Delete(storage))

	return router
}
