// mapgen generates a grove map: grass with a central lake, a sand shore,
// scattered trees and a handful of actor spawns.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"

	"grove/pkg/world"
)

func main() {
	width := flag.Int("width", 40, "map width in tiles")
	height := flag.Int("height", 30, "map height in tiles")
	seed := flag.Int64("seed", 1, "random seed")
	out := flag.String("out", "assets/maps/grove.json", "output path")
	tanks := flag.Int("tanks", 3, "number of tank spawns")
	flag.Parse()

	def := generate(*width, *height, *seed, *tanks)
	data, err := json.MarshalIndent(def, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %dx%d map to %s\n", *width, *height, *out)
}

func generate(width, height int, seed int64, tanks int) world.MapDefinition {
	rng := rand.New(rand.NewSource(seed))

	ground := make([][]int, height)
	objects := make([][]int, height)
	for y := range ground {
		ground[y] = make([]int, width)
		objects[y] = make([]int, width)
	}

	cx, cy := width/2, height/2
	lake := (min(width, height) / 4) * (min(width, height) / 4)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dx, dy := x-cx, y-cy
			distSq := dx*dx + dy*dy

			switch {
			case distSq < lake:
				ground[y][x] = int(world.TileWater)
			case distSq < lake*2:
				ground[y][x] = int(world.TileSand)
			default:
				ground[y][x] = int(world.TileGrass)
				if rng.Intn(100) < 8 {
					objects[y][x] = world.ObjectTree
				}
			}
		}
	}

	def := world.MapDefinition{
		Width:  width,
		Height: height,
		Layers: world.MapLayers{Ground: ground, Objects: objects},
	}

	// Player in the top-left grass corner.
	def.Spawns = append(def.Spawns, world.SpawnDef{
		X:    2 * world.TileSize,
		Y:    2 * world.TileSize,
		Kind: "player",
	})

	for i := 0; i < tanks; i++ {
		x, y := freeGrassTile(rng, ground, objects, width, height)
		def.Spawns = append(def.Spawns, world.SpawnDef{
			X:    float64(x * world.TileSize),
			Y:    float64(y * world.TileSize),
			VX:   float64(10 + rng.Intn(40)),
			Kind: "tank",
		})
	}
	return def
}

func freeGrassTile(rng *rand.Rand, ground, objects [][]int, width, height int) (int, int) {
	for {
		x, y := rng.Intn(width), rng.Intn(height)
		if ground[y][x] == int(world.TileGrass) && objects[y][x] == 0 {
			return x, y
		}
	}
}
