package cashbook

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// LegacyData is the converted content of a legacy export file.
type LegacyData struct {
	Accounts map[string]Account
	Cart     []ShoppingItem
	Tags     []string
}

// Legacy timestamp layouts, RFC 3339 plus the bare ISO forms the old app
// wrote (with and without fractional seconds).
var legacyTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999",
	"2006-01-02 15:04:05",
}

// ImportLegacy reads a legacy export and converts it to the current model.
// Missing sections are tolerated and yield empty documents; plaintext
// passwords are re-hashed on the way in.
func ImportLegacy(r io.Reader) (*LegacyData, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("cannot decode legacy export: %w", err)
	}

	data := &LegacyData{
		Accounts: make(map[string]Account),
		Cart:     []ShoppingItem{},
		Tags:     []string{},
	}

	if raw, err := jsonpath.Get("$.accounts.data", jobj); err == nil {
		accounts, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("legacy accounts: %w: not an object", ErrInvalidInput)
		}
		for name, v := range accounts {
			a, err := legacyAccount(v)
			if err != nil {
				return nil, fmt.Errorf("legacy account %q: %w", name, err)
			}
			data.Accounts[name] = a
		}
	}

	if raw, err := jsonpath.Get("$.shopping_cart.items", jobj); err == nil {
		items, ok := raw.([]any)
		if !ok {
			return nil, fmt.Errorf("legacy cart: %w: not an array", ErrInvalidInput)
		}
		for i, v := range items {
			it, err := legacyItem(v)
			if err != nil {
				return nil, fmt.Errorf("legacy cart item %d: %w", i, err)
			}
			data.Cart = append(data.Cart, it)
		}
	}

	if raw, err := jsonpath.Get("$.tags.data", jobj); err == nil {
		tags, ok := raw.([]any)
		if !ok {
			return nil, fmt.Errorf("legacy tags: %w: not an array", ErrInvalidInput)
		}
		for _, v := range tags {
			tag, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("legacy tags: %w: not a string", ErrInvalidInput)
			}
			data.Tags = append(data.Tags, tag)
		}
	}

	return data, nil
}

// Import converts a legacy export and writes all three documents into the
// store, replacing any current content.
func Import(r io.Reader, s *Store) error {
	data, err := ImportLegacy(r)
	if err != nil {
		return err
	}
	if err := s.Put(KeyAccounts, data.Accounts); err != nil {
		return err
	}
	if err := s.Put(KeyShoppingCart, data.Cart); err != nil {
		return err
	}
	return s.Put(KeyTags, data.Tags)
}

func legacyAccount(v any) (Account, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return Account{}, fmt.Errorf("%w: not an object", ErrInvalidInput)
	}
	a := Account{Transactions: []Transaction{}}

	balance, err := legacyDecimal(obj["balance"])
	if err != nil {
		return Account{}, fmt.Errorf("balance: %w", err)
	}
	a.Balance = balance

	if pw, ok := obj["password"].(string); ok && pw != "" {
		hash, err := hashPassword(pw)
		if err != nil {
			return Account{}, err
		}
		a.Password = hash
	}

	if raw, ok := obj["budget"]; ok && raw != nil {
		limit, err := legacyDecimal(raw)
		if err != nil {
			return Account{}, fmt.Errorf("budget: %w", err)
		}
		a.Budget = &limit
	}

	txs, _ := obj["transactions"].([]any)
	for i, tv := range txs {
		tx, err := legacyTransaction(tv)
		if err != nil {
			return Account{}, fmt.Errorf("transaction %d: %w", i, err)
		}
		a.Transactions = append(a.Transactions, tx)
	}
	return a, nil
}

func legacyTransaction(v any) (Transaction, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return Transaction{}, fmt.Errorf("%w: not an object", ErrInvalidInput)
	}
	amount, err := legacyDecimal(obj["amount"])
	if err != nil {
		return Transaction{}, fmt.Errorf("amount: %w", err)
	}

	var kind Kind
	switch t, _ := obj["type"].(string); t {
	case "gain":
		kind = Income
	case "expense":
		kind = Expense
	default:
		return Transaction{}, fmt.Errorf("type: %w: unknown transaction type %q", ErrInvalidInput, t)
	}

	category, _ := obj["preset"].(string)
	if category == "" {
		category = NoCategory
	}
	memo, _ := obj["specs"].(string)

	stamp, _ := obj["date"].(string)
	ts, err := parseLegacyTime(stamp)
	if err != nil {
		return Transaction{}, fmt.Errorf("date: %w", err)
	}

	return Transaction{
		Amount:    amount,
		Category:  category,
		Memo:      memo,
		Kind:      kind,
		Timestamp: ts,
	}, nil
}

func legacyItem(v any) (ShoppingItem, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return ShoppingItem{}, fmt.Errorf("%w: not an object", ErrInvalidInput)
	}
	cost, err := legacyDecimal(obj["cost"])
	if err != nil {
		return ShoppingItem{}, fmt.Errorf("cost: %w", err)
	}
	name, _ := obj["item"].(string)
	confirmed, _ := obj["confirmed"].(bool)
	return ShoppingItem{Name: name, Cost: cost, Confirmed: confirmed}, nil
}

// legacyDecimal accepts the numeric shapes the old files contain, JSON
// numbers or strings.
func legacyDecimal(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n), nil
	case string:
		return ParseAmount(n)
	case nil:
		return decimal.Zero, nil
	default:
		return decimal.Decimal{}, fmt.Errorf("%w: %v is not a number", ErrInvalidInput, v)
	}
}

func parseLegacyTime(str string) (time.Time, error) {
	for _, layout := range legacyTimeLayouts {
		if ts, err := time.Parse(layout, str); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unrecognized timestamp %q", ErrInvalidInput, str)
}
