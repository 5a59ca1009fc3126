package shared

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewBaseEntity(t *testing.T) {
	entity := NewBaseEntity()

	assert.NotEqual(t, uuid.Nil, entity.ID)
	assert.False(t, entity.CreatedAt.IsZero())
	assert.Equal(t, entity.CreatedAt, entity.UpdatedAt)
}

func TestBaseEntityTouch(t *testing.T) {
	entity := NewBaseEntity()
	entity.UpdatedAt = entity.UpdatedAt.Add(-time.Minute)
	before := entity.UpdatedAt
	created := entity.CreatedAt

	entity.Touch()

	assert.True(t, entity.UpdatedAt.After(before))
	assert.Equal(t, created, entity.CreatedAt)
}
