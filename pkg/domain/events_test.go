package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewEventBase(t *testing.T) {
	before := time.Now()
	base := NewEventBase(EventRecordStored)

	assert.Equal(t, EventRecordStored, base.Type)
	assert.False(t, base.Timestamp.Before(before))
}
