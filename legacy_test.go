package cashbook

import (
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const legacyExport = `{
  "accounts": {
    "data": {
      "alice": {
        "balance": 70,
        "password": "sesame",
        "budget": 200,
        "transactions": [
          {"amount": 100, "type": "gain", "preset": "Salary", "specs": "", "date": "2024-01-01T09:30:00.123456"},
          {"amount": 30, "type": "expense", "preset": "", "specs": "weekly run", "date": "2024-01-02T18:00:00"}
        ]
      }
    }
  },
  "shopping_cart": {
    "items": [
      {"item": "headphones", "cost": 60, "confirmed": true},
      {"item": "kettle", "cost": 25.5, "confirmed": false}
    ]
  },
  "tags": {
    "data": ["Salary", "Groceries"]
  }
}`

func TestImportLegacy(t *testing.T) {
	data, err := ImportLegacy(strings.NewReader(legacyExport))
	if err != nil {
		t.Fatalf("ImportLegacy() error = %v", err)
	}

	alice, ok := data.Accounts["alice"]
	if !ok {
		t.Fatalf("Accounts = %v, want alice", data.Accounts)
	}
	if alice.Balance.String() != "70" {
		t.Errorf("balance = %s, want 70", alice.Balance)
	}
	if alice.Budget == nil || alice.Budget.String() != "200" {
		t.Errorf("budget = %v, want 200", alice.Budget)
	}
	if alice.Password == "" || alice.Password == "sesame" {
		t.Errorf("password = %q, want a hash of the plaintext", alice.Password)
	}

	if len(alice.Transactions) != 2 {
		t.Fatalf("len(transactions) = %d, want 2", len(alice.Transactions))
	}
	first, second := alice.Transactions[0], alice.Transactions[1]
	if first.Kind != Income || first.Category != "Salary" {
		t.Errorf("first tx = %+v, want Salary income", first)
	}
	if second.Kind != Expense || second.Category != NoCategory || second.Memo != "weekly run" {
		t.Errorf("second tx = %+v, want uncategorized expense with memo", second)
	}
	if first.Day() != MustParseDate("2024-01-01") {
		t.Errorf("first tx day = %v, want 2024-01-01", first.Day())
	}

	if len(data.Cart) != 2 {
		t.Fatalf("len(cart) = %d, want 2", len(data.Cart))
	}
	if data.Cart[0].Name != "headphones" || !data.Cart[0].Confirmed {
		t.Errorf("cart[0] = %+v, want confirmed headphones", data.Cart[0])
	}
	if data.Cart[1].Cost.String() != "25.5" {
		t.Errorf("cart[1] cost = %s, want 25.5", data.Cart[1].Cost)
	}

	if !reflect.DeepEqual(data.Tags, []string{"Salary", "Groceries"}) {
		t.Errorf("tags = %v, want [Salary Groceries]", data.Tags)
	}
}

func TestImportLegacyUnknownKind(t *testing.T) {
	export := `{
  "accounts": {
    "data": {
      "alice": {
        "balance": 0,
        "transactions": [
          {"amount": 10, "type": "loss", "preset": "Rent", "date": "2024-01-01T10:00:00"}
        ]
      }
    }
  }
}`
	_, err := ImportLegacy(strings.NewReader(export))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("ImportLegacy(unknown type) error = %v, want ErrInvalidInput", err)
	}
}

func TestImportLegacyMissingSections(t *testing.T) {
	data, err := ImportLegacy(strings.NewReader(`{}`))
	if err != nil {
		t.Fatalf("ImportLegacy(empty) error = %v", err)
	}
	if len(data.Accounts) != 0 || len(data.Cart) != 0 || len(data.Tags) != 0 {
		t.Errorf("empty export = %+v, want empty documents", data)
	}
}

func TestImportReplacesStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cashbook.json")
	store, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}

	if err := Import(strings.NewReader(legacyExport), store); err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	ledger := NewLedger(store)
	balance, err := ledger.Balance("alice")
	if err != nil {
		t.Fatal(err)
	}
	if balance.String() != "70" {
		t.Errorf("balance = %s, want 70", balance)
	}
	if err := ledger.Authenticate("alice", "sesame"); err != nil {
		t.Errorf("Authenticate after import error = %v", err)
	}

	tags, err := NewTagRegistry(store).Tags()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(tags, []string{"Salary", "Groceries"}) {
		t.Errorf("tags = %v, want the imported set", tags)
	}
}
