package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryLastLoadWinsOnNameCollision(t *testing.T) {
	r := NewRegistry()
	first := &Scenario{ID: "s1", Name: "duplicate"}
	second := &Scenario{ID: "s2", Name: "duplicate"}
	r.Load([]*Scenario{first, second})

	got, ok := r.GetByIDOrName("duplicate")
	require.True(t, ok)
	assert.Equal(t, "s2", got.ID)
}

func TestRegistryGetByIDOrName(t *testing.T) {
	r := NewRegistry()
	r.Load([]*Scenario{{ID: "abc", Name: "three-towers"}})

	byID, ok := r.GetByIDOrName("abc")
	require.True(t, ok)
	assert.Equal(t, "three-towers", byID.Name)

	byName, ok := r.GetByIDOrName("three-towers")
	require.True(t, ok)
	assert.Equal(t, "abc", byName.ID)

	_, ok = r.GetByIDOrName("missing")
	assert.False(t, ok)
}

func TestRegistryList(t *testing.T) {
	r := NewRegistry()
	r.Load([]*Scenario{{ID: "1"}, {ID: "2"}})
	assert.Len(t, r.List(), 2)
}
