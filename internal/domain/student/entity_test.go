package student

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicStudent_Fields(t *testing.T) {
	tests := []struct {
		name       string
		categories []string
		flag       bool
	}{
		{"two categories with test", []string{"Math", "Physics"}, true},
		{"single category", []string{"Bio"}, false},
		{"order is kept", []string{"Z", "A", "M", "A"}, true},
		{"empty", []string{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewBasicStudent(tt.categories, tt.flag)
			assert.Equal(t, tt.categories, s.Categories())
			assert.Equal(t, tt.flag, s.HasTestToSkipLevels())
		})
	}
}

func TestBasicStudent_NilCategories(t *testing.T) {
	s := NewBasicStudent(nil, false)
	assert.NotNil(t, s.Categories())
	assert.Empty(t, s.Categories())
}

func TestBasicStudent_IsImmutable(t *testing.T) {
	input := []string{"Math", "Physics"}
	s := NewBasicStudent(input, true)

	input[0] = "History"
	assert.Equal(t, []string{"Math", "Physics"}, s.Categories())

	got := s.Categories()
	got[1] = "Chemistry"
	assert.Equal(t, []string{"Math", "Physics"}, s.Categories())
}

func TestBasicStudent_CanTakeCourse(t *testing.T) {
	s := NewBasicStudent([]string{"Math"}, false)
	for _, course := range []string{"", "Math", "Advanced Quantum Mechanics", "Not a category"} {
		assert.True(t, s.CanTakeCourse(course), "course %q", course)
	}
}

func TestBasicStudent_Clone(t *testing.T) {
	original := NewBasicStudent([]string{"Math", "Physics"}, true)

	cloned := original.Clone()
	clone, ok := cloned.(*BasicStudent)
	require.True(t, ok, "clone should be *BasicStudent, got %T", cloned)

	assert.NotSame(t, original, clone)
	assert.Equal(t, original.Categories(), clone.Categories())
	assert.Equal(t, original.HasTestToSkipLevels(), clone.HasTestToSkipLevels())

	// Backing arrays must not be shared.
	clone.categories[0] = "History"
	assert.Equal(t, []string{"Math", "Physics"}, original.Categories())
}
