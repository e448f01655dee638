package entities

import (
	"sync"

	domainerrors "github.com/encapsulab/encapsulab/internal/domain/errors"
	"github.com/encapsulab/encapsulab/internal/domain/values"
)

// BankAccount holds a balance that never drops below zero.
//
// Invariants:
// - balance >= 0
// - deposits and withdrawals move a strictly positive amount
//
// BankAccount is safe for concurrent use; each operation is atomic.
type BankAccount struct {
	id      values.EntityID
	owner   values.Name
	balance values.Money
	mu      sync.Mutex
}

// NewBankAccount opens an account for owner with an opening balance.
func NewBankAccount(owner string, opening values.Money) (*BankAccount, error) {
	name, err := values.NewName("owner", owner)
	if err != nil {
		return nil, err
	}
	return &BankAccount{
		id:      values.NewEntityID(),
		owner:   name,
		balance: opening,
	}, nil
}

// ID returns the account's identity.
func (a *BankAccount) ID() values.EntityID {
	return a.id
}

// Owner returns the account holder's name.
func (a *BankAccount) Owner() values.Name {
	return a.owner
}

// Balance returns the current balance.
func (a *BankAccount) Balance() values.Money {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// Deposit adds amount to the balance and returns the new balance.
// The balance is unchanged when amount is not positive.
func (a *BankAccount) Deposit(amount values.Amount) (values.Money, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := checkPositive(amount); err != nil {
		return a.balance, err
	}
	a.balance = a.balance.Add(amount)
	return a.balance, nil
}

// Withdraw removes amount from the balance and returns the new balance.
// The balance is unchanged when amount exceeds it.
func (a *BankAccount) Withdraw(amount values.Amount) (values.Money, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := checkPositive(amount); err != nil {
		return a.balance, err
	}
	next, err := a.balance.Sub(amount)
	if err != nil {
		return a.balance, err
	}
	a.balance = next
	return a.balance, nil
}

// checkPositive rejects the zero Amount, which bypasses NewAmount.
func checkPositive(amount values.Amount) error {
	if !amount.Decimal().IsPositive() {
		return domainerrors.NewValidationError("amount", domainerrors.RulePositive, "amount must be positive")
	}
	return nil
}
