// Package config loads game settings from a TOML file over built-in
// defaults.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/hajimehoshi/ebiten/v2"
)

type Config struct {
	Window WindowConfig `toml:"window"`
	Assets AssetsConfig `toml:"assets"`
	Keys   KeysConfig   `toml:"keys"`
	Stats  StatsConfig  `toml:"stats"`
}

type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

type AssetsConfig struct {
	Dir string `toml:"dir"`
	Map string `toml:"map"`
}

// KeysConfig names keys by their ebiten string form ("W", "ArrowUp", ...).
type KeysConfig struct {
	Up    string `toml:"up"`
	Down  string `toml:"down"`
	Left  string `toml:"left"`
	Right string `toml:"right"`
	Debug string `toml:"debug"` // toggle collider outlines
	Stats string `toml:"stats"` // toggle frame statistics overlay
}

type StatsConfig struct {
	HalfLife float64 `toml:"half_life"` // seconds, for the frame-time EWMA
	Show     bool    `toml:"show"`
}

func Default() Config {
	return Config{
		Window: WindowConfig{Width: 640, Height: 480, Title: "Grove"},
		Assets: AssetsConfig{Dir: "assets", Map: "maps/grove.json"},
		Keys:   KeysConfig{Up: "W", Down: "S", Left: "A", Right: "D", Debug: "B", Stats: "F3"},
		Stats:  StatsConfig{HalfLife: 1.0},
	}
}

// Load reads TOML from path on top of the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Bindings is the parsed form of KeysConfig.
type Bindings struct {
	Up, Down, Left, Right ebiten.Key
	Debug, Stats          ebiten.Key
}

// Bindings resolves the configured key names.
func (k KeysConfig) Bindings() (Bindings, error) {
	var b Bindings
	for _, entry := range []struct {
		name string
		dst  *ebiten.Key
	}{
		{k.Up, &b.Up},
		{k.Down, &b.Down},
		{k.Left, &b.Left},
		{k.Right, &b.Right},
		{k.Debug, &b.Debug},
		{k.Stats, &b.Stats},
	} {
		key, ok := keyByName(entry.name)
		if !ok {
			return b, fmt.Errorf("config: unknown key name %q", entry.name)
		}
		*entry.dst = key
	}
	return b, nil
}

func keyByName(name string) (ebiten.Key, bool) {
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}
