package seed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	cafes, err := DefaultCatalog()
	require.NoError(t, err)
	require.Len(t, cafes, 21)

	first := cafes[0]
	assert.Equal(t, "Science Gallery London", first.Name)
	assert.Equal(t, "London Bridge", first.Location)
	assert.True(t, first.HasSockets)
	assert.False(t, first.HasWifi)
	assert.True(t, first.CanTakeCalls)
	require.NotNil(t, first.Seats)
	assert.Equal(t, "50+", *first.Seats)
	require.NotNil(t, first.CoffeePrice)
	assert.Equal(t, "£2.40", *first.CoffeePrice)

	for _, c := range cafes {
		assert.True(t, c.HasPosition(), c.Name)
		assert.Zero(t, c.ID, c.Name)
	}
}

func TestLoadCatalog(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectedLen int
		expectedErr string
	}{
		{
			name: "minimal entry",
			input: `
cafes:
  - name: Test Cafe
    map_url: http://maps.google.com/test
    img_url: http://example.com/photo.jpg
    location: Brixton
`,
			expectedLen: 1,
		},
		{
			name:        "empty document",
			input:       "",
			expectedLen: 0,
		},
		{
			name: "missing fields",
			input: `
cafes:
  - name: Test Cafe
`,
			expectedErr: "seed: entry 1: missing map_url, img_url, location",
		},
		{
			name: "unknown key",
			input: `
cafes:
  - name: Test Cafe
    wifi: true
`,
			expectedErr: "seed: failed to parse catalog",
		},
		{
			name: "duplicate names",
			input: `
cafes:
  - {name: A, map_url: http://m, img_url: http://i, location: X}
  - {name: A, map_url: http://m, img_url: http://i, location: Y}
`,
			expectedErr: `seed: entry 2: duplicate name "A"`,
		},
		{
			name: "half a position",
			input: `
cafes:
  - {name: A, map_url: http://m, img_url: http://i, location: X, lat: 51.5}
`,
			expectedErr: "seed: entry 1: lat and lng must be set together",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cafes, err := LoadCatalog(strings.NewReader(tt.input))

			if tt.expectedErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Len(t, cafes, tt.expectedLen)
		})
	}
}

func TestLoadCatalog_OptionalFields(t *testing.T) {
	cafes, err := LoadCatalog(strings.NewReader(`
cafes:
  - name: Test Cafe
    map_url: http://maps.google.com/test
    img_url: http://example.com/photo.jpg
    location: Brixton
    has_wifi: true
`))
	require.NoError(t, err)
	require.Len(t, cafes, 1)

	assert.True(t, cafes[0].HasWifi)
	assert.False(t, cafes[0].HasSockets)
	assert.Nil(t, cafes[0].Seats)
	assert.Nil(t, cafes[0].Lat)
}
