// Package seed loads the starting cafe catalog.
package seed

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"workbrew/internal/models"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type entry struct {
	Name         string   `yaml:"name"`
	MapURL       string   `yaml:"map_url"`
	ImageURL     string   `yaml:"img_url"`
	Location     string   `yaml:"location"`
	HasSockets   bool     `yaml:"has_sockets"`
	HasToilet    bool     `yaml:"has_toilet"`
	HasWifi      bool     `yaml:"has_wifi"`
	CanTakeCalls bool     `yaml:"can_take_calls"`
	Seats        *string  `yaml:"seats"`
	CoffeePrice  *string  `yaml:"coffee_price"`
	Lat          *float64 `yaml:"lat"`
	Lng          *float64 `yaml:"lng"`
}

type catalog struct {
	Cafes []entry `yaml:"cafes"`
}

// LoadCatalog parses a YAML catalog of the form "cafes: [...]".
// Unknown keys, missing required fields and repeated names are rejected.
func LoadCatalog(r io.Reader) ([]models.Cafe, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c catalog
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return []models.Cafe{}, nil
		}
		return nil, fmt.Errorf("seed: failed to parse catalog: %w", err)
	}

	cafes := make([]models.Cafe, 0, len(c.Cafes))
	seen := make(map[string]bool, len(c.Cafes))
	for i, e := range c.Cafes {
		if err := e.check(); err != nil {
			return nil, fmt.Errorf("seed: entry %d: %w", i+1, err)
		}
		if seen[e.Name] {
			return nil, fmt.Errorf("seed: entry %d: duplicate name %q", i+1, e.Name)
		}
		seen[e.Name] = true
		cafes = append(cafes, e.cafe())
	}

	return cafes, nil
}

// DefaultCatalog returns the embedded London catalog.
func DefaultCatalog() ([]models.Cafe, error) {
	return LoadCatalog(bytes.NewReader(defaultCatalog))
}

func (e entry) check() error {
	var missing []string
	if strings.TrimSpace(e.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(e.MapURL) == "" {
		missing = append(missing, "map_url")
	}
	if strings.TrimSpace(e.ImageURL) == "" {
		missing = append(missing, "img_url")
	}
	if strings.TrimSpace(e.Location) == "" {
		missing = append(missing, "location")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing %s", strings.Join(missing, ", "))
	}
	if (e.Lat == nil) != (e.Lng == nil) {
		return errors.New("lat and lng must be set together")
	}
	return nil
}

func (e entry) cafe() models.Cafe {
	return models.Cafe{
		Name:         e.Name,
		MapURL:       e.MapURL,
		ImageURL:     e.ImageURL,
		Location:     e.Location,
		HasSockets:   e.HasSockets,
		HasToilet:    e.HasToilet,
		HasWifi:      e.HasWifi,
		CanTakeCalls: e.CanTakeCalls,
		Seats:        e.Seats,
		CoffeePrice:  e.CoffeePrice,
		Lat:          e.Lat,
		Lng:          e.Lng,
	}
}
