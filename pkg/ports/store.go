package ports

import (
	"github.com/aretw0/schemarepl/pkg/schema"
)

// RecordStore is an append-only, index-addressed collection of validated records.
type RecordStore interface {
	// Save appends rec and returns the index it was stored at.
	// Indices start at 0, grow by one and are never reused until Clear.
	Save(rec *schema.Schema) (int, *schema.Schema)

	// Load returns the record stored at index.
	// Returns domain.ErrNotFound for negative or out of range indices.
	Load(index int) (*schema.Schema, error)

	// Clear discards every record and restarts indexing at 0.
	Clear()

	// Len returns the number of stored records.
	Len() int
}
