package employee

// Employee is a person who logs time and may report to a manager
type Employee struct {
	ID        int64
	Name      string
	Email     string
	ReportsTo *int64
}

// HasManager reports whether the employee reports to anyone
func (e Employee) HasManager() bool {
	return e.ReportsTo != nil && *e.ReportsTo != 0
}

// Profile is an employee together with their managers, nearest manager first
type Profile struct {
	Employee Employee
	Managers []*Node
}

// Chain returns the reporting line from the top manager down to the employee.
func (p Profile) Chain() []Employee {
	chain := make([]Employee, 0, len(p.Managers)+1)
	for i := len(p.Managers) - 1; i >= 0; i-- {
		chain = append(chain, p.Managers[i].Employee())
	}
	return append(chain, p.Employee)
}
