package cashbook

import (
	"errors"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// Kind distinguishes money flowing into an account from money flowing out.
type Kind string

const (
	Income  Kind = "income"
	Expense Kind = "expense"
)

// ParseKind parses a transaction kind from user input.
func ParseKind(str string) (Kind, error) {
	switch Kind(str) {
	case Income:
		return Income, nil
	case Expense:
		return Expense, nil
	default:
		return "", fmt.Errorf("%w: unknown transaction kind %q", ErrInvalidInput, str)
	}
}

// NoCategory is recorded when a transaction has no tag selected.
const NoCategory = "None"

// AllCategories disables category filtering in reports.
const AllCategories = "All Categories"

// Transaction is a single income or expense entry. It is immutable once
// recorded; the amount is a positive magnitude and the kind carries the sign.
type Transaction struct {
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	Memo      string          `json:"memo,omitempty"`
	Kind      Kind            `json:"kind"`
	Timestamp time.Time       `json:"timestamp"`
}

// Day truncates the transaction timestamp to its calendar date.
func (t Transaction) Day() Date { return DateOf(t.Timestamp) }

// Validate checks a transaction record crossing the store boundary.
func (t Transaction) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Amount, validation.By(positiveDecimal)),
		validation.Field(&t.Category, validation.Required),
		validation.Field(&t.Kind, validation.Required, validation.In(Income, Expense)),
		validation.Field(&t.Timestamp, validation.Required),
	)
}

// Account is the persisted state of one ledger account. Balance is a derived
// cache: it always equals the balance at creation plus the signed sum of the
// transaction history, and is never edited independently.
type Account struct {
	Balance      decimal.Decimal  `json:"balance"`
	Password     string           `json:"password"` // bcrypt hash, empty means no password set
	Budget       *decimal.Decimal `json:"budget"`   // nil means no budget limit
	Transactions []Transaction    `json:"transactions"`
}

// Validate checks every transaction record of the account.
func (a Account) Validate() error {
	for i, tx := range a.Transactions {
		if err := tx.Validate(); err != nil {
			return fmt.Errorf("transaction %d: %w", i, err)
		}
	}
	return nil
}

// ShoppingItem is one entry of the shared shopping cart. A confirmed item
// counts toward consumed budget; a planned one does not.
type ShoppingItem struct {
	Name      string          `json:"name"`
	Cost      decimal.Decimal `json:"cost"`
	Confirmed bool            `json:"confirmed"`
}

// Validate checks a shopping item record crossing the store boundary.
func (it ShoppingItem) Validate() error {
	return validation.ValidateStruct(&it,
		validation.Field(&it.Name, validation.Required),
		validation.Field(&it.Cost, validation.By(positiveDecimal)),
	)
}

// positiveDecimal is an ozzo rule for strictly positive decimal values.
func positiveDecimal(value interface{}) error {
	d, ok := value.(decimal.Decimal)
	if !ok {
		return errors.New("must be a decimal")
	}
	if d.Sign() <= 0 {
		return errors.New("must be positive")
	}
	return nil
}
