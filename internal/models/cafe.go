package models

// Cafe represents a single work-friendly cafe listing, with its amenity flags and, once geocoded, its map position.
type Cafe struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	MapURL       string   `json:"map_url"`
	ImageURL     string   `json:"img_url"`
	Location     string   `json:"location"`
	HasSockets   bool     `json:"has_sockets"`
	HasToilet    bool     `json:"has_toilet"`
	HasWifi      bool     `json:"has_wifi"`
	CanTakeCalls bool     `json:"can_take_calls"`
	Seats        *string  `json:"seats"`
	CoffeePrice  *string  `json:"coffee_price"`
	Lat          *float64 `json:"lat"`
	Lng          *float64 `json:"lng"`
}

// MapMarker is the reduced projection of a Cafe consumed by the map layer.
// Lat and Lng stay nil for cafes that have not been geocoded yet.
type MapMarker struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Location     string   `json:"location"`
	Lat          *float64 `json:"lat"`
	Lng          *float64 `json:"lng"`
	HasWifi      bool     `json:"has_wifi"`
	HasSockets   bool     `json:"has_sockets"`
	CanTakeCalls bool     `json:"can_take_calls"`
}

// Marker projects the cafe onto its map payload.
func (c Cafe) Marker() MapMarker {
	return MapMarker{
		ID:           c.ID,
		Name:         c.Name,
		Location:     c.Location,
		Lat:          c.Lat,
		Lng:          c.Lng,
		HasWifi:      c.HasWifi,
		HasSockets:   c.HasSockets,
		CanTakeCalls: c.CanTakeCalls,
	}
}

// HasPosition reports whether both coordinates are set.
func (c Cafe) HasPosition() bool {
	return c.Lat != nil && c.Lng != nil
}

// CafeFilter holds the optional listing constraints. Zero values mean "no constraint".
type CafeFilter struct {
	Wifi     bool
	Sockets  bool
	Calls    bool
	Location string
}

// IsEmpty reports whether the filter constrains nothing.
func (f CafeFilter) IsEmpty() bool {
	return !f.Wifi && !f.Sockets && !f.Calls && f.Location == ""
}

// Coordinates is a geocoded position.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
