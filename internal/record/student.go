package record

import (
	"errors"
	"math"
	"slices"
)

var (
	// ErrNoGrades is returned by Average when no grades have been set.
	ErrNoGrades = errors.New("student has no grades")

	// ErrNonFiniteAverage is returned when a grade is NaN or infinite.
	ErrNonFiniteAverage = errors.New("student grades do not have a finite average")
)

// Student is a named student and the list of grades their average is
// computed from.
type Student struct {
	name    string
	surname string
	grades  []float64
}

func NewStudent(name, surname string) *Student {
	return &Student{name: name, surname: surname}
}

func (s *Student) Name() string    { return s.name }
func (s *Student) Surname() string { return s.surname }

// Grades returns a copy of the current grades.
func (s *Student) Grades() []float64 {
	return slices.Clone(s.grades)
}

// SetGrades replaces the grade list. The slice is copied so later
// changes by the caller do not leak into the student.
func (s *Student) SetGrades(grades []float64) {
	s.grades = slices.Clone(grades)
}

// Average returns the arithmetic mean of the grades.
//
// Very large grades can overflow the running sum even though their mean
// is representable; in that case the mean is rebuilt from grade/n terms.
func (s *Student) Average() (float64, error) {
	if len(s.grades) == 0 {
		return 0, ErrNoGrades
	}
	n := float64(len(s.grades))

	var sum float64
	for _, g := range s.grades {
		sum += g
	}
	avg := sum / n

	if math.IsInf(avg, 0) {
		avg = 0
		for _, g := range s.grades {
			avg += g / n
		}
	}
	if math.IsInf(avg, 0) || math.IsNaN(avg) {
		return 0, ErrNonFiniteAverage
	}
	return avg, nil
}
