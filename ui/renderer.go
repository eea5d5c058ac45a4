package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/alexanderi96/snake/config"
	"github.com/alexanderi96/snake/game"
	"github.com/alexanderi96/snake/game/types"
)

var (
	skyBlue   = rl.NewColor(0, 191, 255, 255)
	black     = rl.NewColor(0, 0, 0, 255)
	foodColor = rl.NewColor(220, 40, 40, 255)
)

const (
	borderPadding = 5 // gap between the board and its frame
	borderWidth   = 5
	titleSize     = 40
	hudSize       = 40
	hintSize      = 20
)

// Renderer draws a Game onto the raylib window. It implements game.Canvas.
type Renderer struct {
	cellSize  int32
	cellCount int32
	offset    int32
	title     string
	food      *FoodSprite
}

func NewRenderer(cfg *config.Config, food *FoodSprite) *Renderer {
	return &Renderer{
		cellSize:  int32(cfg.CellSize),
		cellCount: int32(cfg.CellCount),
		offset:    int32(cfg.Offset),
		title:     cfg.Title,
		food:      food,
	}
}

func (r *Renderer) cell(p types.Point) (float32, float32) {
	return float32(r.offset + int32(p.X)*r.cellSize), float32(r.offset + int32(p.Y)*r.cellSize)
}

func (r *Renderer) DrawFood(p types.Point) {
	x, y := r.cell(p)
	if r.food != nil && r.food.Loaded() {
		r.food.Draw(x, y, float32(r.cellSize))
		return
	}
	rl.DrawRectangleRounded(rl.NewRectangle(x, y, float32(r.cellSize), float32(r.cellSize)), 1, 6, foodColor)
}

func (r *Renderer) DrawSegment(p types.Point, index int) {
	x, y := r.cell(p)
	segment := rl.NewRectangle(x, y, float32(r.cellSize), float32(r.cellSize))
	rl.DrawRectangleRounded(segment, 0.7, 6, black)
}

// Draw renders one frame: background, board frame, title, score and the
// game itself.
func (r *Renderer) Draw(g *game.Game, autopilot bool) {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	rl.ClearBackground(skyBlue)

	board := float32(r.cellCount * r.cellSize)
	frame := rl.NewRectangle(
		float32(r.offset-borderPadding),
		float32(r.offset-borderPadding),
		board+2*borderPadding,
		board+2*borderPadding)
	rl.DrawRectangleLinesEx(frame, borderWidth, black)

	rl.DrawText(r.title, r.offset-borderPadding, 20, titleSize, black)

	hudY := r.offset + r.cellCount*r.cellSize + 10
	rl.DrawText(fmt.Sprintf("%d", g.Score()), r.offset-borderPadding, hudY, hudSize, black)

	r.drawRight(fmt.Sprintf("Best: %d", g.BestScore()), hudY)
	switch {
	case autopilot:
		r.drawRight("Autopilot", hudY+hintSize+4)
	case !g.Running():
		r.drawRight("Press an arrow key to play", hudY+hintSize+4)
	}

	g.Draw(r)
}

// drawRight draws hint text aligned with the right edge of the board frame.
func (r *Renderer) drawRight(text string, y int32) {
	right := r.offset + r.cellCount*r.cellSize + borderPadding
	rl.DrawText(text, right-rl.MeasureText(text, hintSize), y, hintSize, black)
}
