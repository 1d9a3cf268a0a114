// Package input snapshots the keyboard state once per tick so every system
// sees the same pressed-key set.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Keys is a set of currently pressed keys.
type Keys map[ebiten.Key]struct{}

func (k Keys) Pressed(key ebiten.Key) bool {
	_, ok := k[key]
	return ok
}

// Snapshot captures the keys held down this tick.
func Snapshot() Keys {
	pressed := inpututil.AppendPressedKeys(nil)
	keys := make(Keys, len(pressed))
	for _, k := range pressed {
		keys[k] = struct{}{}
	}
	return keys
}

// JustPressed returns the keys that went down this tick, in ebiten's order.
func JustPressed() []ebiten.Key {
	return inpututil.AppendJustPressedKeys(nil)
}
