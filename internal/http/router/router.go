// Package router builds the route table shared by the serve command and
// the HTTP tests.
package router

import (
	"net/http"

	"github.com/IvanLB1405/records-api/internal/http/handlers/account"
	"github.com/IvanLB1405/records-api/internal/http/handlers/car"
	"github.com/IvanLB1405/records-api/internal/http/handlers/student"
	"github.com/IvanLB1405/records-api/internal/storage"
)

// New registers every handler against storage.
//
// Route table:
//
//	POST   /api/accounts                  → open an account
//	GET    /api/accounts                  → list accounts
//	GET    /api/accounts/{id}             → get one account
//	DELETE /api/accounts/{id}             → delete an account
//	POST   /api/accounts/{id}/deposit     → add to the balance
//	POST   /api/accounts/{id}/withdraw    → guarded subtract (409 if rejected)
//
//	POST   /api/cars                      → register a car
//	GET    /api/cars                      → list cars
//	GET    /api/cars/{id}                 → get one car
//	DELETE /api/cars/{id}                 → delete a car
//	POST   /api/cars/{id}/accelerate      → speed += 10
//	POST   /api/cars/{id}/brake           → guarded speed -= 10 (409 if stopped)
//
//	POST   /api/students                  → create a student
//	GET    /api/students                  → list students
//	GET    /api/students/{id}             → get one student
//	PUT    /api/students/{id}/grades      → replace grades
//	GET    /api/students/{id}/average     → grade average (422 if none)
//	DELETE /api/students/{id}             → delete a student
func New(storage storage.Storage) *http.ServeMux {
	router := http.NewServeMux()

	router.HandleFunc("POST /api/accounts", account.New(storage))
	router.HandleFunc("GET /api/accounts", account.GetList(storage))
	router.HandleFunc("GET /api/accounts/{id}", account.GetByID(storage))
	router.HandleFunc("DELETE /api/accounts/{id}", account.Delete(storage))
	router.HandleFunc("POST /api/accounts/{id}/deposit", account.Deposit(storage))
	router.HandleFunc("POST /api/accounts/{id}/withdraw", account.Withdraw(storage))

	router.HandleFunc("POST /api/cars", car.New(storage))
	router.HandleFunc("GET /api/cars", car.GetList(storage))
	router.HandleFunc("GET /api/cars/{id}", car.GetByID(storage))
	router.HandleFunc("DELETE /api/cars/{id}", car.Delete(storage))
	router.HandleFunc("POST /api/cars/{id}/accelerate", car.Accelerate(storage))
	router.HandleFunc("POST /api/cars/{id}/brake", car.Brake(storage))

	router.HandleFunc("POST /api/students", student.New(storage))
	router.HandleFunc("GET /api/students", student.GetList(storage))
	router.HandleFunc("GET /api/students/{id}", student.GetByID(storage))
	router.HandleFunc("PUT /api/students/{id}/grades", student.SetGrades(storage))
	router.HandleFunc("GET /api/students/{id}/average", student.Average(storage))
	router.HandleFunc("DELETE /api/students/{id}", student.Delete(storage))

	return router
}
