// Package student contains all HTTP handlers related to the Student resource.
//
// HANDLER PATTERN — THE CLOSURE / FACTORY PATTERN:
// ────────────────────────────────────────────────
// Go's router expects handler functions with the signature:
//
//	func(http.ResponseWriter, *http.Request)
//
// That signature has no room for extra parameters like a database, so
// each handler is built by a factory that accepts the storage and
// returns a function closing over it:
//
//	router.HandleFunc("POST /api/students", student.New(storage))
//	//                                              ^^^^^^^^^^^^^
//	//                         New(storage) is called ONCE at startup.
//	//                         The returned func runs on EVERY request.
package student

import (
	"log/slog"
	"net/http"

	"github.com/IvanLB1405/records-api/internal/record"
	"github.com/IvanLB1405/records-api/internal/storage"
	"github.com/IvanLB1405/records-api/internal/types"
	"github.com/IvanLB1405/records-api/internal/utils/request"
	"github.com/IvanLB1405/records-api/internal/utils/response"
)

// ─────────────────────────────────────────────────────────────────────────────
// New handles POST /api/students
//
// Request body (JSON), grades optional:
//
//	{ "name": "Ivan", "surname": "Fernandez", "grades": [7, 8.5] }
//
// Success response (201 Created):
//
//	{ "id": 1 }
//
// ─────────────────────────────────────────────────────────────────────────────
func New(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating a student")

		var req types.StudentRequest
		if !request.Decode(w, r, &req) {
			return
		}

		lastID, err := storage.CreateStudent(req.Name, req.Surname, req.Grades)
		if err != nil {
			slog.Error("error creating student", slog.String("error", err.Error()))
			response.StorageError(w, err)
			return
		}

		slog.Info("student created", slog.Int64("id", lastID))
		response.WriteJSON(w, http.StatusCreated, map[string]int64{"id": lastID})
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// GetByID handles GET /api/students/{id}
//
//	{ "id": 1, "name": "Ivan", "surname": "Fernandez", "grades": [4, 6], "average": 5 }
//
// "average" is omitted while the student has no grades.
// ─────────────────────────────────────────────────────────────────────────────
func GetByID(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := request.PathID(w, r)
		if !ok {
			return
		}
		slog.Info("getting a student", slog.Int64("id", id))

		student, err := storage.GetStudentByID(id)
		if err != nil {
			slog.Error("error getting student", slog.Int64("id", id), slog.String("error", err.Error()))
			response.StorageError(w, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, student)
	}
}

// GetList handles GET /api/students
func GetList(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("getting all students")

		students, err := storage.GetStudents()
		if err != nil {
			slog.Error("error getting students", slog.String("error", err.Error()))
			response.StorageError(w, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, students)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// SetGrades handles PUT /api/students/{id}/grades
// Replaces ALL grades of an existing student.
//
//	{ "grades": [1, 2, 3, 4, 5, 6, 7, 8, 9] }  →  200 { ..., "average": 5 }
//
// ─────────────────────────────────────────────────────────────────────────────
func SetGrades(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := request.PathID(w, r)
		if !ok {
			return
		}

		var req types.GradesRequest
		if !request.Decode(w, r, &req) {
			return
		}
		slog.Info("setting student grades", slog.Int64("id", id), slog.Int("count", len(req.Grades)))

		updated, err := storage.SetStudentGrades(id, req.Grades)
		if err != nil {
			slog.Error("error setting grades", slog.Int64("id", id), slog.String("error", err.Error()))
			response.StorageError(w, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, updated)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Average handles GET /api/students/{id}/average
//
//	200 { "average": 5 }
//	422 { "status": "error", "error": "student has no grades" }
//
// ─────────────────────────────────────────────────────────────────────────────
func Average(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := request.PathID(w, r)
		if !ok {
			return
		}
		slog.Info("getting student average", slog.Int64("id", id))

		student, err := storage.GetStudentByID(id)
		if err != nil {
			slog.Error("error getting student", slog.Int64("id", id), slog.String("error", err.Error()))
			response.StorageError(w, err)
			return
		}

		if student.Average == nil {
			err := record.ErrNoGrades
			if len(student.Grades) > 0 {
				err = record.ErrNonFiniteAverage
			}
			response.WriteJSON(w, http.StatusUnprocessableEntity, response.GeneralError(err))
			return
		}

		response.WriteJSON(w, http.StatusOK, map[string]float64{"average": *student.Average})
	}
}

// Delete handles DELETE /api/students/{id}
func Delete(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := request.PathID(w, r)
		if !ok {
			return
		}
		slog.Info("deleting a student", slog.Int64("id", id))

		if err := storage.DeleteStudentByID(id); err != nil {
			slog.Error("error deleting student", slog.Int64("id", id), slog.String("error", err.Error()))
			response.StorageError(w, err)
			return
		}

		slog.Info("student deleted", slog.Int64("id", id))
		response.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
	}
}
