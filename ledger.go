package cashbook

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// Ledger is the account and transaction facade over a store. It is cheap to
// create; all state lives in the store.
type Ledger struct {
	store *Store
}

// NewLedger returns a ledger over the given store.
func NewLedger(s *Store) *Ledger { return &Ledger{store: s} }

// CreateAccount registers a new named account with the given starting
// balance and an optional password. It fails if the name is empty or already
// taken.
func (l *Ledger) CreateAccount(name string, initialBalance decimal.Decimal, password string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: account name cannot be empty", ErrInvalidInput)
	}
	var accounts map[string]Account
	return l.store.Update(KeyAccounts, &accounts, func() (any, error) {
		if _, ok := accounts[name]; ok {
			return nil, fmt.Errorf("account %q: %w", name, ErrAlreadyExists)
		}
		hash, err := hashPassword(password)
		if err != nil {
			return nil, err
		}
		accounts[name] = Account{
			Balance:      initialBalance,
			Password:     hash,
			Transactions: []Transaction{},
		}
		return accounts, nil
	})
}

// hashPassword returns the bcrypt hash of password, or "" for the empty
// password which means no password is set.
func hashPassword(password string) (string, error) {
	if password == "" {
		return "", nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("cannot hash password: %w", err)
	}
	return string(hash), nil
}

// Authenticate checks a name and password pair against the stored credentials.
// An account without a password accepts only the empty password.
func (l *Ledger) Authenticate(name, password string) error {
	var accounts map[string]Account
	if err := l.store.Get(KeyAccounts, &accounts); err != nil {
		return err
	}
	a, ok := accounts[name]
	if !ok {
		return fmt.Errorf("account %q: %w", name, ErrNotFound)
	}
	if a.Password == "" {
		if password == "" {
			return nil
		}
		return fmt.Errorf("account %q: %w", name, ErrAuthFailure)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(password)); err != nil {
		return fmt.Errorf("account %q: %w", name, ErrAuthFailure)
	}
	return nil
}

// Record appends an income or expense transaction to the named account and
// adjusts its balance by the signed amount. An empty category is stored as
// NoCategory. Recording against an unknown account creates it on the fly.
func (l *Ledger) Record(name string, amount decimal.Decimal, category, memo string, kind Kind) (Transaction, error) {
	if category == "" {
		category = NoCategory
	}
	tx := Transaction{
		Amount:    amount,
		Category:  category,
		Memo:      memo,
		Kind:      kind,
		Timestamp: time.Now(),
	}
	if err := tx.Validate(); err != nil {
		return Transaction{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var accounts map[string]Account
	err := l.store.Update(KeyAccounts, &accounts, func() (any, error) {
		a := ensureAccount(accounts, name)
		switch kind {
		case Income:
			a.Balance = a.Balance.Add(amount)
		case Expense:
			a.Balance = a.Balance.Sub(amount)
		}
		a.Transactions = append(a.Transactions, tx)
		accounts[name] = a
		return accounts, nil
	})
	if err != nil {
		return Transaction{}, err
	}
	return tx, nil
}

// ensureAccount returns the named account, creating an empty one in the map
// when it does not exist yet.
func ensureAccount(accounts map[string]Account, name string) Account {
	a, ok := accounts[name]
	if !ok {
		log.Printf("account %q does not exist, creating it", name)
		a = Account{Balance: decimal.Zero, Transactions: []Transaction{}}
		accounts[name] = a
	}
	return a
}

// Account returns the full stored state of the named account.
func (l *Ledger) Account(name string) (Account, error) {
	var accounts map[string]Account
	if err := l.store.Get(KeyAccounts, &accounts); err != nil {
		return Account{}, err
	}
	a, ok := accounts[name]
	if !ok {
		return Account{}, fmt.Errorf("account %q: %w", name, ErrNotFound)
	}
	return a, nil
}

// Transactions returns the transaction history of the named account in
// recording order.
func (l *Ledger) Transactions(name string) ([]Transaction, error) {
	a, err := l.Account(name)
	if err != nil {
		return nil, err
	}
	return a.Transactions, nil
}

// Balance returns the current balance of the named account.
func (l *Ledger) Balance(name string) (decimal.Decimal, error) {
	a, err := l.Account(name)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return a.Balance, nil
}

// SetPassword replaces the password of the named account. The empty password
// removes it.
func (l *Ledger) SetPassword(name, password string) error {
	hash, err := hashPassword(password)
	if err != nil {
		return err
	}
	var accounts map[string]Account
	return l.store.Update(KeyAccounts, &accounts, func() (any, error) {
		a, ok := accounts[name]
		if !ok {
			return nil, fmt.Errorf("account %q: %w", name, ErrNotFound)
		}
		a.Password = hash
		accounts[name] = a
		return accounts, nil
	})
}

// SetBudget sets the monthly spending limit of the named account. Any decimal
// is accepted, including zero and negatives; the budget report simply shows
// the arithmetic consequences.
func (l *Ledger) SetBudget(name string, limit decimal.Decimal) error {
	var accounts map[string]Account
	return l.store.Update(KeyAccounts, &accounts, func() (any, error) {
		a, ok := accounts[name]
		if !ok {
			return nil, fmt.Errorf("account %q: %w", name, ErrNotFound)
		}
		a.Budget = &limit
		accounts[name] = a
		return accounts, nil
	})
}

// ClearBudget removes the spending limit of the named account.
func (l *Ledger) ClearBudget(name string) error {
	var accounts map[string]Account
	return l.store.Update(KeyAccounts, &accounts, func() (any, error) {
		a, ok := accounts[name]
		if !ok {
			return nil, fmt.Errorf("account %q: %w", name, ErrNotFound)
		}
		a.Budget = nil
		accounts[name] = a
		return accounts, nil
	})
}

// DeleteAccount removes the named account and its whole history.
func (l *Ledger) DeleteAccount(name string) error {
	var accounts map[string]Account
	return l.store.Update(KeyAccounts, &accounts, func() (any, error) {
		if _, ok := accounts[name]; !ok {
			return nil, fmt.Errorf("account %q: %w", name, ErrNotFound)
		}
		delete(accounts, name)
		return accounts, nil
	})
}

// Accounts returns the sorted names of all stored accounts.
func (l *Ledger) Accounts() ([]string, error) {
	var accounts map[string]Account
	if err := l.store.Get(KeyAccounts, &accounts); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(accounts))
	for name := range accounts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// BudgetReport computes the budget standing of the named account against the
// current shopping cart.
func (l *Ledger) BudgetReport(name string) (BudgetReport, error) {
	a, err := l.Account(name)
	if err != nil {
		return BudgetReport{}, err
	}
	var items []ShoppingItem
	if err := l.store.Get(KeyShoppingCart, &items); err != nil {
		// A missing cart document counts as an empty cart.
		if !errors.Is(err, ErrNotFound) {
			return BudgetReport{}, err
		}
	}
	return NewBudgetReport(a, items), nil
}
