package subjects

import (
	"github.com/encapsulab/encapsulab/internal/domain/entities"
	"github.com/encapsulab/encapsulab/internal/domain/values"
	"github.com/shopspring/decimal"
)

type bankAccountSubject struct {
	account *entities.BankAccount
}

func newBankAccountSubject(args Args) (Subject, error) {
	owner, err := args.String("owner")
	if err != nil {
		return nil, err
	}
	opening, err := args.DecimalOr("balance", decimal.Zero)
	if err != nil {
		return nil, err
	}
	balance, err := values.NewMoney("balance", opening)
	if err != nil {
		return nil, err
	}
	account, err := entities.NewBankAccount(owner, balance)
	if err != nil {
		return nil, err
	}
	return &bankAccountSubject{account: account}, nil
}

func (s *bankAccountSubject) Kind() string { return "bank_account" }

func (s *bankAccountSubject) Invoke(op string, args Args) (interface{}, error) {
	switch op {
	case "deposit":
		amount, err := amountArg(args)
		if err != nil {
			return nil, err
		}
		balance, err := s.account.Deposit(amount)
		if err != nil {
			return nil, err
		}
		return balance.Float64(), nil
	case "withdraw":
		amount, err := amountArg(args)
		if err != nil {
			return nil, err
		}
		balance, err := s.account.Withdraw(amount)
		if err != nil {
			return nil, err
		}
		return balance.Float64(), nil
	case "balance":
		return s.account.Balance().Float64(), nil
	default:
		return nil, unknownOperation(s.Kind(), op)
	}
}

func (s *bankAccountSubject) Snapshot() map[string]interface{} {
	return map[string]interface{}{
		"id":      s.account.ID().String(),
		"owner":   s.account.Owner().String(),
		"balance": s.account.Balance().Float64(),
	}
}

func amountArg(args Args) (values.Amount, error) {
	d, err := args.Decimal("amount")
	if err != nil {
		return values.Amount{}, err
	}
	return values.NewAmount(d)
}

type employeeSubject struct {
	employee *entities.Employee
}

func newEmployeeSubject(args Args) (Subject, error) {
	name, err := args.String("name")
	if err != nil {
		return nil, err
	}
	raw, err := args.Decimal("salary")
	if err != nil {
		return nil, err
	}
	salary, err := values.NewMoney("salary", raw)
	if err != nil {
		return nil, err
	}
	employee, err := entities.NewEmployee(name, salary)
	if err != nil {
		return nil, err
	}
	return &employeeSubject{employee: employee}, nil
}

func (s *employeeSubject) Kind() string { return "employee" }

func (s *employeeSubject) Invoke(op string, args Args) (interface{}, error) {
	switch op {
	case "give_raise":
		percent, err := args.Decimal("percent")
		if err != nil {
			return nil, err
		}
		salary, err := s.employee.GiveRaise(percent)
		if err != nil {
			return nil, err
		}
		return salary.Float64(), nil
	case "complete_service_year":
		return s.employee.CompleteServiceYear(), nil
	case "calculate_bonus":
		return s.employee.CalculateBonus().Float64(), nil
	default:
		return nil, unknownOperation(s.Kind(), op)
	}
}

func (s *employeeSubject) Snapshot() map[string]interface{} {
	return map[string]interface{}{
		"name":             s.employee.Name(),
		"salary":           s.employee.Salary().Float64(),
		"years_of_service": s.employee.YearsOfService(),
	}
}
