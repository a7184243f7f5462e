package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateNamespace(t *testing.T) {
	tests := []struct {
		name      string
		schema    string
		expectErr bool
	}{
		{name: "empty means no namespace", schema: ""},
		{name: "lowercase identifier", schema: "workbrew"},
		{name: "mixed case with digits and underscore", schema: "Work_Brew2"},
		{name: "leading underscore", schema: "_cafes"},
		{name: "hyphen", schema: "bad-name", expectErr: true},
		{name: "statement injection", schema: "x;drop table cafe", expectErr: true},
		{name: "quote", schema: `a"b`, expectErr: true},
		{name: "leading digit", schema: "1cafes", expectErr: true},
		{name: "whitespace", schema: "work brew", expectErr: true},
		{name: "too long", schema: "a123456789012345678901234567890123456789012345678901234567890123", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNamespace(tt.schema)
			if tt.expectErr {
				assert.ErrorIs(t, err, ErrInvalidNamespace)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSearchPath(t *testing.T) {
	tests := []struct {
		schema   string
		expected string
	}{
		{schema: "workbrew", expected: `"workbrew",public`},
		{schema: "Work_Brew2", expected: `"Work_Brew2",public`},
	}

	for _, tt := range tests {
		t.Run(tt.schema, func(t *testing.T) {
			assert.Equal(t, tt.expected, searchPath(tt.schema))
		})
	}
}
