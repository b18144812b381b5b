package student

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicFactory_CreateStudent(t *testing.T) {
	var factory Factory = BasicFactory{}

	s := factory.CreateStudent([]string{"Math", "Physics"}, true)
	require.IsType(t, &BasicStudent{}, s)
	assert.Equal(t, []string{"Math", "Physics"}, s.Categories())
	assert.True(t, s.HasTestToSkipLevels())

	other := factory.CreateStudent([]string{"Math", "Physics"}, true)
	assert.NotSame(t, s, other)
}

func TestBuilder_Defaults(t *testing.T) {
	s := NewBuilder().Build()
	assert.Empty(t, s.Categories())
	assert.False(t, s.HasTestToSkipLevels())
}

func TestBuilder_Chain(t *testing.T) {
	s := NewBuilder().
		SetCategories([]string{"Math", "Art"}).
		SetTestToSkipLevels(true).
		Build()

	assert.Equal(t, []string{"Math", "Art"}, s.Categories())
	assert.True(t, s.HasTestToSkipLevels())
}

func TestBuilder_ReuseWithoutReset(t *testing.T) {
	b := NewBuilder().SetCategories([]string{"Bio"})

	first := b.Build()
	second := b.Build()

	assert.NotSame(t, first, second)
	assert.Equal(t, []string{"Bio"}, first.Categories())
	assert.Equal(t, []string{"Bio"}, second.Categories())
}

func TestBuilder_SnapshotsState(t *testing.T) {
	categories := []string{"Bio"}
	b := NewBuilder().SetCategories(categories)
	s := b.Build()

	categories[0] = "Chem"
	b.SetTestToSkipLevels(true)

	assert.Equal(t, []string{"Bio"}, s.Categories())
	assert.False(t, s.HasTestToSkipLevels())
	assert.Equal(t, []string{"Chem"}, b.Build().Categories())
}

func TestBuilder_Reset(t *testing.T) {
	b := NewBuilder().SetCategories([]string{"Bio"}).SetTestToSkipLevels(true)

	s := b.Reset().Build()
	assert.Empty(t, s.Categories())
	assert.False(t, s.HasTestToSkipLevels())
}
