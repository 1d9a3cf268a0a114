package render

import (
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Renderer is the ebiten implementation of API. Draw calls are queued during
// the tick and flushed depth-sorted onto the screen, so systems can submit
// in any order.
type Renderer struct {
	assetDir string
	files    map[string]*ebiten.Image // decoded source images by path
	sprites  []*ebiten.Image          // indexed by SpriteID
	queue    []drawCall
	camera   Camera
}

type drawCall struct {
	sprite SpriteID
	depth  float64
	seq    int // submission order, tie-break for equal depth
	pos    mgl64.Vec2
	size   mgl64.Vec2 // zero means natural size
	rect   bool       // debug rectangle instead of a sprite
}

func NewRenderer(assetDir string) *Renderer {
	return &Renderer{
		assetDir: assetDir,
		files:    make(map[string]*ebiten.Image),
	}
}

// LoadSprite decodes the backing image (once per file) and registers the
// sub-region as a new sprite.
func (r *Renderer) LoadSprite(def SpriteDef) (SpriteID, error) {
	img, ok := r.files[def.Path]
	if !ok {
		f, err := os.Open(filepath.Join(r.assetDir, def.Path))
		if err != nil {
			return 0, fmt.Errorf("render: open sprite file: %w", err)
		}
		defer f.Close()
		decoded, _, err := image.Decode(f)
		if err != nil {
			return 0, fmt.Errorf("render: decode %s: %w", def.Path, err)
		}
		img = ebiten.NewImageFromImage(decoded)
		r.files[def.Path] = img
	}

	region := img
	if def.W > 0 && def.H > 0 {
		bounds := image.Rect(def.X, def.Y, def.X+def.W, def.Y+def.H)
		region = img.SubImage(bounds).(*ebiten.Image)
	}
	r.sprites = append(r.sprites, region)
	return SpriteID(len(r.sprites) - 1), nil
}

func (r *Renderer) DrawImage(id SpriteID, depth float64, pos mgl64.Vec2) {
	r.queue = append(r.queue, drawCall{sprite: id, depth: depth, seq: len(r.queue), pos: pos})
}

func (r *Renderer) DrawImageScaled(id SpriteID, depth float64, pos, size mgl64.Vec2) {
	r.queue = append(r.queue, drawCall{sprite: id, depth: depth, seq: len(r.queue), pos: pos, size: size})
}

// DrawRectangle queues a debug outline drawn above all sprites.
func (r *Renderer) DrawRectangle(pos, size mgl64.Vec2) {
	r.queue = append(r.queue, drawCall{rect: true, depth: 1e9, seq: len(r.queue), pos: pos, size: size})
}

func (r *Renderer) SetCamera(cam Camera) {
	r.camera = cam
}

// Flush draws the queued calls onto the screen, lower depth first, and
// resets the queue for the next frame.
func (r *Renderer) Flush(screen *ebiten.Image) {
	slices.SortFunc(r.queue, func(a, b drawCall) int {
		switch {
		case a.depth < b.depth:
			return -1
		case a.depth > b.depth:
			return 1
		default:
			return a.seq - b.seq
		}
	})

	for _, call := range r.queue {
		x := call.pos[0] - r.camera.Position[0]
		y := call.pos[1] - r.camera.Position[1]

		if call.rect {
			vector.StrokeRect(screen, float32(x), float32(y),
				float32(call.size[0]), float32(call.size[1]), 1, debugColor, false)
			continue
		}

		sprite := r.sprites[call.sprite]
		op := &ebiten.DrawImageOptions{}
		if call.size[0] > 0 && call.size[1] > 0 {
			bounds := sprite.Bounds()
			op.GeoM.Scale(call.size[0]/float64(bounds.Dx()), call.size[1]/float64(bounds.Dy()))
		}
		op.GeoM.Translate(x, y)
		screen.DrawImage(sprite, op)
	}
	r.queue = r.queue[:0]
}
