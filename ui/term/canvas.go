// Package term draws the game on a terminal through tcell.
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/alexanderi96/snake/game"
	"github.com/alexanderi96/snake/game/types"
)

const (
	cellWidth = 2 // terminal columns per board cell, keeps cells roughly square
	originX   = 1
	originY   = 2
)

var (
	styleBoard = tcell.StyleDefault.Background(tcell.ColorDeepSkyBlue).Foreground(tcell.ColorBlack)
	styleFood  = styleBoard.Foreground(tcell.ColorRed)
	styleHead  = styleBoard.Foreground(tcell.ColorBlack).Bold(true)
	styleBody  = styleBoard.Foreground(tcell.ColorDarkSlateGray)
	styleText  = tcell.StyleDefault
)

// Canvas renders a Game on a tcell screen. It implements game.Canvas.
type Canvas struct {
	screen    tcell.Screen
	cellCount int
	title     string
}

func NewCanvas(screen tcell.Screen, cellCount int, title string) *Canvas {
	return &Canvas{
		screen:    screen,
		cellCount: cellCount,
		title:     title,
	}
}

// Size is the number of columns and rows the canvas needs.
func (c *Canvas) Size() (int, int) {
	return c.cellCount*cellWidth + 2, c.cellCount + 5
}

func (c *Canvas) fill(p types.Point, r rune, style tcell.Style) {
	x := originX + p.X*cellWidth
	y := originY + p.Y
	for i := 0; i < cellWidth; i++ {
		c.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (c *Canvas) DrawFood(p types.Point) {
	x := originX + p.X*cellWidth
	c.screen.SetContent(x, originY+p.Y, '●', nil, styleFood)
	c.screen.SetContent(x+1, originY+p.Y, ' ', nil, styleBoard)
}

func (c *Canvas) DrawSegment(p types.Point, index int) {
	if index == 0 {
		c.fill(p, '█', styleHead)
		return
	}
	c.fill(p, '▓', styleBody)
}

// Draw renders one full frame and shows it.
func (c *Canvas) Draw(g *game.Game, autopilot bool) {
	c.screen.Clear()

	c.text(0, 0, c.title, styleText.Bold(true))
	c.drawBoard()

	hudY := originY + c.cellCount + 1
	c.text(0, hudY, fmt.Sprintf("Score: %d  Best: %d", g.Score(), g.BestScore()), styleText)
	switch {
	case autopilot:
		c.text(0, hudY+1, "Autopilot, q to quit", styleText)
	case !g.Running():
		c.text(0, hudY+1, "Press an arrow key to play, q to quit", styleText)
	}

	g.Draw(c)
	c.screen.Show()
}

func (c *Canvas) drawBoard() {
	w := c.cellCount * cellWidth
	top, bottom := originY-1, originY+c.cellCount
	left, right := originX-1, originX+w

	for x := originX; x < right; x++ {
		c.screen.SetContent(x, top, '─', nil, styleText)
		c.screen.SetContent(x, bottom, '─', nil, styleText)
	}
	for y := originY; y < bottom; y++ {
		c.screen.SetContent(left, y, '│', nil, styleText)
		c.screen.SetContent(right, y, '│', nil, styleText)
		for x := originX; x < right; x++ {
			c.screen.SetContent(x, y, ' ', nil, styleBoard)
		}
	}
	c.screen.SetContent(left, top, '┌', nil, styleText)
	c.screen.SetContent(right, top, '┐', nil, styleText)
	c.screen.SetContent(left, bottom, '└', nil, styleText)
	c.screen.SetContent(right, bottom, '┘', nil, styleText)
}

func (c *Canvas) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		c.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
