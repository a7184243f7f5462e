package service

import "workbrew/internal/models"

// Listing is everything the index page and the map need for one request.
type Listing struct {
	Cafes     []models.Cafe
	Markers   []models.MapMarker
	Locations []string
	Filter    models.CafeFilter
	// Mapped counts the cafes that have a position on the map.
	Mapped int
}

// Empty reports whether no cafe matched the filter.
func (l *Listing) Empty() bool {
	return len(l.Cafes) == 0
}

// Present builds the display list and the marker projection from cafes already filtered and ordered by the store.
// Cafes without coordinates keep their place in the projection with a null position.
func Present(cafes []models.Cafe, locations []string, filter models.CafeFilter) *Listing {
	if cafes == nil {
		cafes = []models.Cafe{}
	}
	if locations == nil {
		locations = []string{}
	}

	var mapped int
	markers := make([]models.MapMarker, 0, len(cafes))
	for _, c := range cafes {
		markers = append(markers, c.Marker())
		if c.HasPosition() {
			mapped++
		}
	}

	return &Listing{
		Cafes:     cafes,
		Markers:   markers,
		Locations: locations,
		Filter:    filter,
		Mapped:    mapped,
	}
}
