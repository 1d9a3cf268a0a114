package world

import (
	"encoding/json"
	"fmt"
	"os"
)

// MapDefinition is the on-disk JSON form of a map.
type MapDefinition struct {
	Width  int        `json:"width"`
	Height int        `json:"height"`
	Layers MapLayers  `json:"layers"`
	Spawns []SpawnDef `json:"spawns"`
}

type MapLayers struct {
	Ground  [][]int `json:"ground"`
	Objects [][]int `json:"objects"`
}

type SpawnDef struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	VX   float64 `json:"vx"`
	VY   float64 `json:"vy"`
	Kind string  `json:"kind"`
}

// Load reads and validates a map file.
func Load(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("world: read map: %w", err)
	}
	return Parse(data)
}

// Parse builds a Map from JSON bytes.
func Parse(data []byte) (*Map, error) {
	var def MapDefinition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("world: parse map: %w", err)
	}
	if def.Width <= 0 || def.Height <= 0 {
		return nil, fmt.Errorf("world: map size %dx%d invalid", def.Width, def.Height)
	}
	if len(def.Layers.Ground) != def.Height {
		return nil, fmt.Errorf("world: ground layer has %d rows, want %d", len(def.Layers.Ground), def.Height)
	}

	m := NewMap(def.Width, def.Height)
	for y, row := range def.Layers.Ground {
		if len(row) != def.Width {
			return nil, fmt.Errorf("world: ground row %d has %d tiles, want %d", y, len(row), def.Width)
		}
		for x, v := range row {
			m.Tiles[y][x] = Tile{Type: TileType(v)}
		}
	}
	for y, row := range def.Layers.Objects {
		if y >= def.Height {
			break
		}
		for x, v := range row {
			if x < def.Width {
				m.Objects[y][x] = v
			}
		}
	}
	for _, s := range def.Spawns {
		m.Spawns = append(m.Spawns, SpawnPoint{X: s.X, Y: s.Y, VX: s.VX, VY: s.VY, Kind: s.Kind})
	}
	return m, nil
}
