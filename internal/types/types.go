// Package types holds the request and response shapes shared by the HTTP
// handlers and the storage layer. Keeping them in one place prevents
// import cycles: handlers, storage, and utils can all import types
// without depending on each other.
//
// Request structs carry validate:"..." tags checked by the
// go-playground/validator package before anything touches the database.
package types

import "github.com/IvanLB1405/records-api/internal/record"

// ─────────────────────────────────────────────────────────────────────────────
// Requests
// ─────────────────────────────────────────────────────────────────────────────

// AccountRequest opens a new account. Balance may be omitted (zero).
type AccountRequest struct {
	Owner   string `json:"owner"   validate:"required"`
	Balance int64  `json:"balance" validate:"gte=0"`
}

// CarRequest registers a new car. Cars always start stopped.
type CarRequest struct {
	Brand string `json:"brand" validate:"required"`
	Model string `json:"model" validate:"required"`
	Year  int    `json:"year"  validate:"required,gte=1886"`
}

// StudentRequest creates a student, optionally with an initial grade list.
type StudentRequest struct {
	Name    string    `json:"name"    validate:"required"`
	Surname string    `json:"surname" validate:"required"`
	Grades  []float64 `json:"grades"  validate:"omitempty,dive,gte=0"`
}

// AmountRequest is the body of a deposit or withdrawal.
type AmountRequest struct {
	Amount int64 `json:"amount" validate:"gt=0"`
}

// GradesRequest replaces a student's grades.
type GradesRequest struct {
	Grades []float64 `json:"grades" validate:"required,min=1,dive,gte=0"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Views
// ─────────────────────────────────────────────────────────────────────────────

type Account struct {
	ID      int64  `json:"id"`
	Owner   string `json:"owner"`
	Balance int64  `json:"balance"`
}

type Car struct {
	ID    int64  `json:"id"`
	Brand string `json:"brand"`
	Model string `json:"model"`
	Year  int    `json:"year"`
	Speed int64  `json:"speed"`
}

// Student includes the average when the student has at least one grade.
type Student struct {
	ID      int64     `json:"id"`
	Name    string    `json:"name"`
	Surname string    `json:"surname"`
	Grades  []float64 `json:"grades"`
	Average *float64  `json:"average,omitempty"`
}

// Outcome is the JSON form of record.Result.
type Outcome struct {
	Label  string `json:"label"`
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
	Before int64  `json:"before"`
	After  int64  `json:"after"`
	Notice string `json:"notice"`
}

// AccountOutcome is returned by deposit and withdraw.
type AccountOutcome struct {
	Account Account `json:"account"`
	Outcome Outcome `json:"outcome"`
}

// CarOutcome is returned by accelerate and brake.
type CarOutcome struct {
	Car     Car     `json:"car"`
	Outcome Outcome `json:"outcome"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Conversions from the record package
// ─────────────────────────────────────────────────────────────────────────────

func NewAccount(id int64, a *record.Account) Account {
	return Account{ID: id, Owner: a.Owner(), Balance: a.Balance()}
}

func NewCar(id int64, c *record.Car) Car {
	return Car{ID: id, Brand: c.Brand(), Model: c.Model(), Year: c.Year(), Speed: c.Speed()}
}

func NewStudent(id int64, s *record.Student) Student {
	view := Student{ID: id, Name: s.Name(), Surname: s.Surname(), Grades: s.Grades()}
	if view.Grades == nil {
		// encode as [] rather than null
		view.Grades = []float64{}
	}
	if avg, err := s.Average(); err == nil {
		view.Average = &avg
	}
	return view
}

// NewOutcome renders res, including its notice line.
func NewOutcome(res record.Result) Outcome {
	return Outcome{
		Label:  res.Label,
		Status: string(res.Status),
		Reason: res.Reason,
		Before: res.Before,
		After:  res.After,
		Notice: res.Notice(),
	}
}
