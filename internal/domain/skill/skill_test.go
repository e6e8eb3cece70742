package skill

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalCategory(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "exact match", input: "Frontend", expected: "Frontend"},
		{name: "case insensitive", input: "frontend", expected: "Frontend"},
		{name: "surrounding whitespace", input: "  tools & tech  ", expected: "Tools & Tech"},
		{name: "unknown category", input: "Gardening", wantErr: true},
		{name: "empty input", input: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := CanonicalCategory(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrUnknownCategory)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestDisplayLevel(t *testing.T) {
	assert.Equal(t, 0, DisplayLevel(-5))
	assert.Equal(t, 0, DisplayLevel(0))
	assert.Equal(t, 42, DisplayLevel(42))
	assert.Equal(t, 100, DisplayLevel(100))
	assert.Equal(t, 100, DisplayLevel(150))
}

func TestValidate(t *testing.T) {
	s := &Skill{Name: "", Category: "Backend"}
	assert.ErrorIs(t, s.Validate(), ErrNameRequired)

	s = &Skill{Name: "Go", Category: "Cooking"}
	assert.ErrorIs(t, s.Validate(), ErrUnknownCategory)

	s = &Skill{Name: "Go", Category: "Backend", Level: 90}
	assert.NoError(t, s.Validate())
}
