package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseID(t *testing.T) {
	cases := []struct {
		raw string
		id  uint64
		ok  bool
	}{
		{"1", 1, true},
		{"42", 42, true},
		{"0", 0, false},
		{"-3", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		id, ok := ParseID(c.raw)
		assert.Equal(t, c.ok, ok, c.raw)
		assert.Equal(t, c.id, id, c.raw)
	}
}

type sample struct {
	Name string `validate:"required"`
}

func TestValidateDTO(t *testing.T) {
	assert.NoError(t, ValidateDTO(&sample{Name: "news"}))

	err := ValidateDTO(&sample{})
	assert.ErrorContains(t, err, "Name")
	assert.ErrorContains(t, err, "required")
}
