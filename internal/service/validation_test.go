package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCafeSubmission_Validate(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(*CafeSubmission)
		expected ValidationErrors
	}{
		{
			name:     "valid",
			modify:   func(*CafeSubmission) {},
			expected: nil,
		},
		{
			name:   "missing name",
			modify: func(s *CafeSubmission) { s.Name = "" },
			expected: ValidationErrors{
				"name": "This field is required.",
			},
		},
		{
			name:   "whitespace only location after trimming",
			modify: func(s *CafeSubmission) { s.Location = "   " },
			expected: ValidationErrors{
				"location": "This field is required.",
			},
		},
		{
			name:   "relative map url",
			modify: func(s *CafeSubmission) { s.MapURL = "/maps/cafe" },
			expected: ValidationErrors{
				"map_url": "Must be a full URL, including http:// or https://.",
			},
		},
		{
			name:   "image url without host",
			modify: func(s *CafeSubmission) { s.ImageURL = "http://" },
			expected: ValidationErrors{
				"img_url": "Must be a full URL, including http:// or https://.",
			},
		},
		{
			name:   "name too long",
			modify: func(s *CafeSubmission) { s.Name = strings.Repeat("a", 251) },
			expected: ValidationErrors{
				"name": "Must be at most 250 characters.",
			},
		},
		{
			name:     "name at limit counts runes",
			modify:   func(s *CafeSubmission) { s.Name = strings.Repeat("é", 250) },
			expected: nil,
		},
		{
			name:   "seats too long",
			modify: func(s *CafeSubmission) { s.Seats = strings.Repeat("1", 251) },
			expected: ValidationErrors{
				"seats": "Must be at most 250 characters.",
			},
		},
		{
			name: "several fields",
			modify: func(s *CafeSubmission) {
				s.Name = ""
				s.MapURL = ""
				s.ImageURL = "nope"
			},
			expected: ValidationErrors{
				"name":    "This field is required.",
				"map_url": "This field is required.",
				"img_url": "Must be a full URL, including http:// or https://.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := validSubmission()
			tt.modify(&sub)

			assert.Equal(t, tt.expected, sub.Trimmed().Validate())
		})
	}
}

func TestChecked(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"", false},
		{"false", false},
		{"FALSE", false},
		{"0", false},
		{"off", false},
		{"on", true},
		{"y", true},
		{"true", true},
		{"1", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.expected, Checked(tt.value))
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	err := ValidationErrors{"name": "x", "location": "y"}
	assert.Equal(t, "service: invalid submission: location, name", err.Error())
}

func TestCafeSubmission_Cafe(t *testing.T) {
	sub := validSubmission()
	sub.HasToilet = "on"
	sub.CanTakeCalls = "off"
	sub.CoffeePrice = "£2.80"

	cafe := sub.Cafe()
	assert.True(t, cafe.HasToilet)
	assert.False(t, cafe.CanTakeCalls)
	assert.Nil(t, cafe.Seats)
	if assert.NotNil(t, cafe.CoffeePrice) {
		assert.Equal(t, "£2.80", *cafe.CoffeePrice)
	}
}
