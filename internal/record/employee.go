package record

// Employee is paid by the hour.
type Employee struct {
	name        string
	hourlyWage  int64
	hoursWorked int64
}

func NewEmployee(name string, hourlyWage, hoursWorked int64) *Employee {
	return &Employee{name: name, hourlyWage: hourlyWage, hoursWorked: hoursWorked}
}

func (e *Employee) Name() string       { return e.name }
func (e *Employee) HourlyWage() int64  { return e.hourlyWage }
func (e *Employee) HoursWorked() int64 { return e.hoursWorked }

// Payroll is the gross pay for the hours worked.
func (e *Employee) Payroll() int64 {
	return e.hourlyWage * e.hoursWorked
}
