package ports_test

import (
	"fmt"
	"testing"

	"github.com/aretw0/schemarepl/pkg/domain"
	"github.com/aretw0/schemarepl/pkg/ports"
	"github.com/aretw0/schemarepl/pkg/ports/tests"
	"github.com/aretw0/schemarepl/pkg/schema"
)

// MockStore is a map-backed RecordStore used to exercise the contract suite
// against an implementation other than the slice-backed one.
type MockStore struct {
	data map[int]*schema.Schema
}

func NewMockStore() *MockStore {
	return &MockStore{data: make(map[int]*schema.Schema)}
}

func (m *MockStore) Save(rec *schema.Schema) (int, *schema.Schema) {
	idx := len(m.data)
	m.data[idx] = rec
	return idx, rec
}

func (m *MockStore) Load(index int) (*schema.Schema, error) {
	rec, ok := m.data[index]
	if !ok {
		return nil, fmt.Errorf("%w: index %d", domain.ErrNotFound, index)
	}
	return rec, nil
}

func (m *MockStore) Clear() { m.data = make(map[int]*schema.Schema) }

func (m *MockStore) Len() int { return len(m.data) }

var _ ports.RecordStore = (*MockStore)(nil)

func TestMockStore_Contract(t *testing.T) {
	tests.RecordStoreContractTest(t, func() ports.RecordStore {
		return NewMockStore()
	})
}
