package geo

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// SectorUnknown is returned when a point falls outside every declared box.
const SectorUnknown = "unknown"

// Sector is a named rectangular zone used to group rides for discovery.
type Sector struct {
	Name   string  `yaml:"name"`
	MinLat float64 `yaml:"min_lat"`
	MaxLat float64 `yaml:"max_lat"`
	MinLng float64 `yaml:"min_lng"`
	MaxLng float64 `yaml:"max_lng"`
}

// Contains reports whether the point lies inside the box, bounds inclusive.
func (s Sector) Contains(p Point) bool {
	return p.Lat >= s.MinLat && p.Lat <= s.MaxLat &&
		p.Lng >= s.MinLng && p.Lng <= s.MaxLng
}

//go:embed sectors.yaml
var sectorsYAML []byte

// sectors is the static zone table, loaded once at startup. The slice
// keeps the declaration order from sectors.yaml.
var sectors = mustLoadSectors(sectorsYAML)

func mustLoadSectors(data []byte) []Sector {
	var out []Sector
	if err := yaml.Unmarshal(data, &out); err != nil {
		panic(fmt.Sprintf("geo: invalid sectors.yaml: %v", err))
	}
	if len(out) == 0 {
		panic("geo: sectors.yaml declares no sectors")
	}
	return out
}

// Sectors returns the declared zone table in declaration order.
func Sectors() []Sector {
	out := make([]Sector, len(sectors))
	copy(out, sectors)
	return out
}

// ClassifySector returns the name of the first declared sector whose box
// contains the point, or SectorUnknown when no box matches. When boxes
// overlap, first-declared wins; that is a deliberate tie-break, not an
// error.
func ClassifySector(p Point) string {
	for _, s := range sectors {
		if s.Contains(p) {
			return s.Name
		}
	}
	return SectorUnknown
}
