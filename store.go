package cashbook

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Document keys of the store file.
const (
	KeyAccounts     = "accounts"
	KeyShoppingCart = "shoppingCart"
	KeyTags         = "tags"
)

// DefaultTags returns the category set a fresh store is seeded with.
func DefaultTags() []string {
	return []string{"Salary", "Groceries", "Rent", "Entertainment"}
}

// Store is a handle on a single JSON document file holding the accounts,
// shopping cart and tags documents. All mutations are flushed to disk with
// write-new-then-swap semantics before returning, so a crash mid-write never
// corrupts the previous file. A single mutex serializes read-modify-write
// cycles; the three documents share one physical file, so finer locks would
// still serialize on the flush.
type Store struct {
	mu   sync.Mutex
	path string
	docs map[string]json.RawMessage
}

// Open loads the store file, creating and seeding it on first use. The three
// documents are initialized if absent: empty accounts, empty shopping cart,
// and the default tag set.
func Open(path string) (*Store, error) {
	s := &Store{path: path, docs: make(map[string]json.RawMessage)}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// First use, seeding below creates the file.
	case err != nil:
		return nil, fmt.Errorf("cannot open store file %q: %w", path, err)
	default:
		if err := json.Unmarshal(data, &s.docs); err != nil {
			return nil, &DecodeError{Path: path, Err: err}
		}
	}

	if err := s.seed(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the store file path.
func (s *Store) Path() string { return s.path }

// seed initializes missing documents and flushes the file when anything was added.
func (s *Store) seed() error {
	seeded := false
	for _, d := range []struct {
		key string
		doc any
	}{
		{KeyAccounts, map[string]Account{}},
		{KeyShoppingCart, []ShoppingItem{}},
		{KeyTags, DefaultTags()},
	} {
		if _, ok := s.docs[d.key]; ok {
			continue
		}
		raw, err := json.Marshal(d.doc)
		if err != nil {
			return fmt.Errorf("cannot seed document %q: %w", d.key, err)
		}
		s.docs[d.key] = raw
		seeded = true
	}
	if !seeded {
		return nil
	}
	log.Printf("store %q: seeded missing documents", s.path)
	return s.flush()
}

// Exists reports whether a document is present under key.
func (s *Store) Exists(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.docs[key]
	return ok
}

// Get decodes the document stored under key into out, which must be a
// pointer. Each decode yields a fresh copy, so callers can freely mutate the
// result before putting it back.
func (s *Store) Get(key string, out any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get(key, out)
}

// Put replaces the document under key and flushes the store file before
// returning.
func (s *Store) Put(key string, doc any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.put(key, doc)
}

// Update runs one read-modify-write cycle as a critical section: it decodes
// the document under key into out, calls mutate, and persists the returned
// document. Returning an error from mutate aborts without writing.
func (s *Store) Update(key string, out any, mutate func() (any, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.get(key, out); err != nil {
		return err
	}
	doc, err := mutate()
	if err != nil {
		return err
	}
	return s.put(key, doc)
}

func (s *Store) get(key string, out any) error {
	raw, ok := s.docs[key]
	if !ok {
		return fmt.Errorf("document %q: %w", key, ErrNotFound)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &DecodeError{Key: key, Path: s.path, Err: err}
	}
	if err := validateDocument(out); err != nil {
		return &DecodeError{Key: key, Path: s.path, Err: err}
	}
	return nil
}

func (s *Store) put(key string, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("cannot marshal document %q: %w", key, err)
	}
	s.docs[key] = raw
	return s.flush()
}

// validateDocument rejects malformed records at the store boundary.
func validateDocument(out any) error {
	switch v := out.(type) {
	case *map[string]Account:
		for name, a := range *v {
			if err := a.Validate(); err != nil {
				return fmt.Errorf("account %q: %w", name, err)
			}
		}
	case *[]ShoppingItem:
		for i, it := range *v {
			if err := it.Validate(); err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
		}
	}
	return nil
}

// flush atomically writes the store file: tmp file, fsync, rename.
func (s *Store) flush() error {
	data, err := json.MarshalIndent(s.docs, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal store: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create store directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".cashbook-tmp-*")
	if err != nil {
		return fmt.Errorf("cannot create temp store file: %w", err)
	}
	tmpName := tmp.Name()

	// Clean up on any failure path.
	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("cannot write temp store file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("cannot fsync store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot close temp store file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("cannot swap store file: %w", err)
	}
	success = true
	return nil
}
