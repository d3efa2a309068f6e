package memory

import (
	"fmt"

	"github.com/aretw0/schemarepl/pkg/domain"
	"github.com/aretw0/schemarepl/pkg/schema"
)

// Store implements ports.RecordStore in memory.
// It is owned by a single command loop and is not safe for concurrent use.
type Store struct {
	records []*schema.Schema
}

// NewStore creates a new, empty in-memory store.
func NewStore() *Store {
	return &Store{}
}

// Save appends rec. The store keeps the pointer; it does not copy the record.
func (s *Store) Save(rec *schema.Schema) (int, *schema.Schema) {
	s.records = append(s.records, rec)
	return len(s.records) - 1, rec
}

// Load retrieves the record stored at index.
func (s *Store) Load(index int) (*schema.Schema, error) {
	if index < 0 || index >= len(s.records) {
		return nil, fmt.Errorf("%w: index %d", domain.ErrNotFound, index)
	}
	return s.records[index], nil
}

// Clear removes every record.
func (s *Store) Clear() {
	s.records = nil
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	return len(s.records)
}
