package cashbook

import (
	"errors"
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
)

func TestTagAdd(t *testing.T) {
	reg := NewTagRegistry(tempStore(t))

	if err := reg.Add("Books"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	// Adding again is a no-op, not an error.
	if err := reg.Add("Books"); err != nil {
		t.Fatalf("Add(duplicate) error = %v", err)
	}

	tags, err := reg.Tags()
	if err != nil {
		t.Fatal(err)
	}
	want := append(DefaultTags(), "Books")
	if !reflect.DeepEqual(tags, want) {
		t.Errorf("Tags() = %v, want %v", tags, want)
	}

	if err := reg.Add(" "); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Add(blank) error = %v, want ErrInvalidInput", err)
	}
}

func TestTagDelete(t *testing.T) {
	reg := NewTagRegistry(tempStore(t))

	if err := reg.Delete("Rent"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	// Deleting an absent tag is a no-op.
	if err := reg.Delete("Rent"); err != nil {
		t.Fatalf("Delete(absent) error = %v", err)
	}

	tags, err := reg.Tags()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Salary", "Groceries", "Entertainment"}
	if !reflect.DeepEqual(tags, want) {
		t.Errorf("Tags() = %v, want %v", tags, want)
	}
}

func TestTagRename(t *testing.T) {
	reg := NewTagRegistry(tempStore(t))

	if err := reg.Rename("Rent", "Housing"); err != nil {
		t.Fatalf("Rename() error = %v", err)
	}
	tags, err := reg.Tags()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Salary", "Groceries", "Housing", "Entertainment"}
	if !reflect.DeepEqual(tags, want) {
		t.Errorf("Tags() = %v, want %v", tags, want)
	}

	// Renaming an absent tag is a no-op.
	if err := reg.Rename("Rent", "Housing"); err != nil {
		t.Fatalf("Rename(absent) error = %v", err)
	}

	// Renaming onto an existing tag leaves duplicates.
	if err := reg.Rename("Housing", "Salary"); err != nil {
		t.Fatal(err)
	}
	tags, err = reg.Tags()
	if err != nil {
		t.Fatal(err)
	}
	want = []string{"Salary", "Groceries", "Salary", "Entertainment"}
	if !reflect.DeepEqual(tags, want) {
		t.Errorf("Tags() after collision = %v, want %v", tags, want)
	}
}

func TestTagRenameKeepsHistory(t *testing.T) {
	store := tempStore(t)
	ledger := NewLedger(store)
	reg := NewTagRegistry(store)

	if _, err := ledger.Record("alice", decimal.NewFromInt(10), "Rent", "", Expense); err != nil {
		t.Fatal(err)
	}
	if err := reg.Rename("Rent", "Housing"); err != nil {
		t.Fatal(err)
	}

	txs, err := ledger.Transactions("alice")
	if err != nil {
		t.Fatal(err)
	}
	if txs[0].Category != "Rent" {
		t.Errorf("category after rename = %q, want %q", txs[0].Category, "Rent")
	}
}
