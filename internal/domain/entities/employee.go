package entities

import (
	"github.com/encapsulab/encapsulab/internal/domain/values"
	"github.com/shopspring/decimal"
)

const (
	// ServiceMilestoneYears is how often CompleteServiceYear grants an automatic raise.
	ServiceMilestoneYears = 5
	// MilestoneRaisePercent is the automatic raise granted at each milestone.
	MilestoneRaisePercent = 5
)

var milestoneRaise = values.MustNewPercentage(MilestoneRaisePercent)

// Employee carries salary business rules behind methods instead of setters.
// Not safe for concurrent use.
//
// Invariants:
// - name is non-empty
// - salary >= 0
// - raises are strictly positive
type Employee struct {
	name           values.Name
	salary         values.Money
	yearsOfService int
}

// NewEmployee hires an employee with zero years of service.
func NewEmployee(name string, salary values.Money) (*Employee, error) {
	n, err := values.NewName("name", name)
	if err != nil {
		return nil, err
	}
	return &Employee{name: n, salary: salary}, nil
}

// Name returns the employee's name.
func (e *Employee) Name() string {
	return e.name.String()
}

// Salary returns the current salary.
func (e *Employee) Salary() values.Money {
	return e.salary
}

// YearsOfService returns the number of completed service years.
func (e *Employee) YearsOfService() int {
	return e.yearsOfService
}

// GiveRaise increases the salary by percent and returns the new salary.
// A non-positive percent is rejected and the salary is unchanged.
func (e *Employee) GiveRaise(percent decimal.Decimal) (values.Money, error) {
	p, err := values.NewPercentage(percent)
	if err != nil {
		return e.salary, err
	}
	e.salary = e.salary.Increase(p)
	return e.salary, nil
}

// CompleteServiceYear records one more year of service. Every
// ServiceMilestoneYears-th year grants a MilestoneRaisePercent raise; the
// return value reports whether this call granted it.
func (e *Employee) CompleteServiceYear() bool {
	e.yearsOfService++
	if e.yearsOfService%ServiceMilestoneYears != 0 {
		return false
	}
	e.salary = e.salary.Increase(milestoneRaise)
	return true
}

// CalculateBonus derives the bonus as salary × yearsOfService / 10.
func (e *Employee) CalculateBonus() values.Money {
	return e.salary.Scale(int64(e.yearsOfService), 10)
}
