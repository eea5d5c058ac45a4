package ui

import (
	"log"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
)

// FoodSprite is the food image uploaded to the GPU. It must be unloaded once
// the window is done with it; Unload is safe to call more than once.
type FoodSprite struct {
	texture rl.Texture2D
	loaded  bool
}

// LoadFoodSprite reads path into a texture. It needs an open window. A
// missing file is not fatal: the sprite then draws nothing and the renderer
// falls back to a plain cell.
func LoadFoodSprite(path string) (*FoodSprite, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			log.Printf("food image %s not found, drawing plain cells", path)
			return &FoodSprite{}, nil
		}
		return nil, errors.Wrapf(err, "food image %s", path)
	}

	image := rl.LoadImage(path)
	texture := rl.LoadTextureFromImage(image)
	rl.UnloadImage(image)
	if texture.ID == 0 {
		return nil, errors.Errorf("could not upload %s as a texture", path)
	}
	return &FoodSprite{texture: texture, loaded: true}, nil
}

func (s *FoodSprite) Loaded() bool {
	return s.loaded
}

// Draw paints the sprite scaled to a size × size square at (x, y).
func (s *FoodSprite) Draw(x, y, size float32) {
	scale := size / float32(s.texture.Width)
	rl.DrawTextureEx(s.texture, rl.NewVector2(x, y), 0, scale, rl.White)
}

func (s *FoodSprite) Unload() {
	if !s.loaded {
		return
	}
	rl.UnloadTexture(s.texture)
	s.loaded = false
}
