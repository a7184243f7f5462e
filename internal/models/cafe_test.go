package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCafe_Marker(t *testing.T) {
	lat, lng := 51.47, -0.07

	tests := []struct {
		name     string
		cafe     Cafe
		expected MapMarker
	}{
		{
			name: "geocoded cafe",
			cafe: Cafe{
				ID:           1,
				Name:         "WiFi Only",
				MapURL:       "http://g.co/1",
				ImageURL:     "http://img/1.jpg",
				Location:     "Peckham",
				HasWifi:      true,
				HasToilet:    true,
				CanTakeCalls: false,
				Lat:          &lat,
				Lng:          &lng,
			},
			expected: MapMarker{
				ID:       1,
				Name:     "WiFi Only",
				Location: "Peckham",
				Lat:      &lat,
				Lng:      &lng,
				HasWifi:  true,
			},
		},
		{
			name: "cafe without coordinates keeps nil position",
			cafe: Cafe{
				ID:           2,
				Name:         "Full House",
				Location:     "Shoreditch",
				HasWifi:      true,
				HasSockets:   true,
				CanTakeCalls: true,
			},
			expected: MapMarker{
				ID:           2,
				Name:         "Full House",
				Location:     "Shoreditch",
				HasWifi:      true,
				HasSockets:   true,
				CanTakeCalls: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cafe.Marker())
			assert.Equal(t, tt.cafe.Lat != nil, tt.cafe.HasPosition())
		})
	}
}

func TestCafeFilter_IsEmpty(t *testing.T) {
	assert.True(t, CafeFilter{}.IsEmpty())
	assert.False(t, CafeFilter{Wifi: true}.IsEmpty())
	assert.False(t, CafeFilter{Location: "Peckham"}.IsEmpty())
}
