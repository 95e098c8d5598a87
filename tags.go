package cashbook

import (
	"fmt"
	"strings"
)

// TagRegistry manages the shared list of spending categories. The registry
// only governs which tags can be picked for new transactions; recorded
// history keeps whatever category name it was written with.
type TagRegistry struct {
	store *Store
}

// NewTagRegistry returns a tag registry over the given store.
func NewTagRegistry(s *Store) *TagRegistry { return &TagRegistry{store: s} }

// Tags returns the registered tags in stored order.
func (r *TagRegistry) Tags() ([]string, error) {
	var tags []string
	if err := r.store.Get(KeyTags, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// Add appends a tag to the registry. Adding a tag that is already present is
// a no-op.
func (r *TagRegistry) Add(tag string) error {
	if strings.TrimSpace(tag) == "" {
		return fmt.Errorf("%w: tag cannot be empty", ErrInvalidInput)
	}
	var tags []string
	return r.store.Update(KeyTags, &tags, func() (any, error) {
		for _, t := range tags {
			if t == tag {
				return tags, nil
			}
		}
		return append(tags, tag), nil
	})
}

// Delete removes every occurrence of a tag from the registry. Deleting an
// absent tag is a no-op. Transactions already tagged with it are untouched.
func (r *TagRegistry) Delete(tag string) error {
	var tags []string
	return r.store.Update(KeyTags, &tags, func() (any, error) {
		kept := tags[:0]
		for _, t := range tags {
			if t != tag {
				kept = append(kept, t)
			}
		}
		return kept, nil
	})
}

// Rename replaces every occurrence of old with new in the registry, keeping
// positions. Renaming an absent tag is a no-op, and renaming onto an existing
// tag leaves the registry with duplicate entries. Recorded transactions keep
// the old category name.
func (r *TagRegistry) Rename(old, new string) error {
	if strings.TrimSpace(new) == "" {
		return fmt.Errorf("%w: tag cannot be empty", ErrInvalidInput)
	}
	var tags []string
	return r.store.Update(KeyTags, &tags, func() (any, error) {
		for i, t := range tags {
			if t == old {
				tags[i] = new
			}
		}
		return tags, nil
	})
}
