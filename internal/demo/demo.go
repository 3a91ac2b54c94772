// Package demo replays the classic record walkthroughs (bank account,
// car, student, employee) and prints one status line per step. Nothing
// runs on import; callers invoke Run explicitly.
package demo

import (
	"fmt"
	"io"

	"github.com/IvanLB1405/records-api/internal/record"
)

// Scenario is one named walkthrough.
type Scenario struct {
	Name string
	Run  func(w io.Writer) error
}

// Scenarios lists every walkthrough in the order Run plays them.
func Scenarios() []Scenario {
	return []Scenario{
		{Name: "account", Run: accountScenario},
		{Name: "car", Run: carScenario},
		{Name: "student", Run: studentScenario},
		{Name: "employee", Run: employeeScenario},
	}
}

// Run plays the named scenarios, or all of them when names is empty.
func Run(w io.Writer, names ...string) error {
	selected := Scenarios()
	if len(names) > 0 {
		byName := make(map[string]Scenario, len(selected))
		for _, s := range selected {
			byName[s.Name] = s
		}
		selected = selected[:0:0]
		for _, n := range names {
			s, ok := byName[n]
			if !ok {
				return fmt.Errorf("unknown scenario %q", n)
			}
			selected = append(selected, s)
		}
	}

	for _, s := range selected {
		if _, err := fmt.Fprintf(w, "== %s\n", s.Name); err != nil {
			return err
		}
		if err := s.Run(w); err != nil {
			return fmt.Errorf("scenario %s: %w", s.Name, err)
		}
	}
	return nil
}

func accountScenario(w io.Writer) error {
	acct := record.NewAccount("Ivan", 0)
	steps := []struct {
		label string
		res   func() record.Result
	}{
		{"deposit 100", func() record.Result { return acct.Deposit(100) }},
		{"withdraw 100", func() record.Result { return acct.Withdraw(100) }},
		{"withdraw 10", func() record.Result { return acct.Withdraw(10) }},
	}
	for _, step := range steps {
		if _, err := fmt.Fprintf(w, "%s: %s\n", step.label, step.res().Notice()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%s's balance: %d\n", acct.Owner(), acct.Balance())
	return err
}

func carScenario(w io.Writer) error {
	car := record.NewCar("Renault", "Clio", 2020, 0)
	for _, step := range []struct {
		label string
		op    func() record.Result
	}{
		{"accelerate", car.Accelerate},
		{"brake", car.Brake},
		{"brake", car.Brake},
	} {
		if _, err := fmt.Fprintf(w, "%s: %s\n", step.label, step.op().Notice()); err != nil {
			return err
		}
	}
	return nil
}

func studentScenario(w io.Writer) error {
	s := record.NewStudent("Ivan", "Fernandez")
	s.SetGrades([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	avg, err := s.Average()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s %s average: %.1f\n", s.Name(), s.Surname(), avg)
	return err
}

func employeeScenario(w io.Writer) error {
	e := record.NewEmployee("Ivan", 30, 160)
	_, err := fmt.Fprintf(w, "%s payroll: %d\n", e.Name(), e.Payroll())
	return err
}
