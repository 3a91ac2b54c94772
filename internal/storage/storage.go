// Package storage defines the Storage interface — a contract that any
// database backend must satisfy to work with this application.
//
// Handlers (HTTP layer) should not know or care which database they are
// talking to. They depend only on this interface, so tests and other
// backends can be swapped in by changing one line in main.
package storage

import (
	"errors"

	"github.com/IvanLB1405/records-api/internal/record"
	"github.com/IvanLB1405/records-api/internal/types"
)

// ErrNotFound is returned (wrapped) when no row matches the given id.
var ErrNotFound = errors.New("not found")

// AccountOp is a guarded mutation applied to a stored account.
type AccountOp func(*record.Account) record.Result

// CarOp is a guarded mutation applied to a stored car.
type CarOp func(*record.Car) record.Result

// Storage is the database contract.
//
// The Apply* methods load a record, run op on it, and persist the new
// state only if op's Result was applied. Load, op and write happen
// atomically so two concurrent withdrawals can never both pass the guard.
type Storage interface {
	CreateAccount(owner string, balance int64) (int64, error)
	GetAccountByID(id int64) (types.Account, error)
	GetAccounts() ([]types.Account, error)
	ApplyToAccount(id int64, op AccountOp) (types.Account, record.Result, error)
	DeleteAccountByID(id int64) error

	CreateCar(brand, model string, year int) (int64, error)
	GetCarByID(id int64) (types.Car, error)
	GetCars() ([]types.Car, error)
	ApplyToCar(id int64, op CarOp) (types.Car, record.Result, error)
	DeleteCarByID(id int64) error

	CreateStudent(name, surname string, grades []float64) (int64, error)
	GetStudentByID(id int64) (types.Student, error)
	GetStudents() ([]types.Student, error)
	// SetStudentGrades replaces the grade list and returns the updated
	// student.
	SetStudentGrades(id int64, grades []float64) (types.Student, error)
	DeleteStudentByID(id int64) error

	Close() error
}
