package ai

import (
	"github.com/alexanderi96/snake/game"
	"github.com/alexanderi96/snake/game/types"
)

// State is what the autopilot sees of the board before a tick.
type State struct {
	Heading         types.Direction
	RelativeFoodDir [2]int  // sign of the food offset from the head (x, y)
	FoodDistance    int     // Manhattan distance to food
	DangerDirs      [4]bool // danger one step away (up, right, down, left)
}

// Sense reads the board from the snake's point of view.
func Sense(g *game.Game) State {
	snake := g.Snake()
	head := snake.Head()
	food := g.Food().Position()
	cm := g.CollisionManager()

	var dangers [4]bool
	for i, d := range types.Directions {
		dangers[i] = cm.IsDanger(head.Add(d.ToPoint()), snake)
	}

	return State{
		Heading: snake.Heading(),
		RelativeFoodDir: [2]int{
			sign(food.X - head.X),
			sign(food.Y - head.Y),
		},
		FoodDistance: manhattanDistance(head, food),
		DangerDirs:   dangers,
	}
}

// Autopilot steers greedily towards the food while avoiding cells that end
// the round on the next tick.
type Autopilot struct{}

func NewAutopilot() *Autopilot {
	return &Autopilot{}
}

// Choose picks the next direction. Moves are tried straight, left, right
// and the first safe one that gets closest to the food wins. With no safe
// move left it keeps the heading.
func (a *Autopilot) Choose(s State) types.Direction {
	best := types.None
	bestDist := 0

	for _, d := range relativeMoves(s.Heading) {
		if s.DangerDirs[dangerIndex(d)] {
			continue
		}
		dist := distanceAfter(s, d)
		if best == types.None || dist < bestDist {
			best, bestDist = d, dist
		}
	}

	if best == types.None {
		return s.Heading
	}
	return best
}

// Drive senses the board and steers the game. It returns the direction it
// asked for.
func (a *Autopilot) Drive(g *game.Game) types.Direction {
	d := a.Choose(Sense(g))
	g.Steer(d)
	return d
}

// relativeMoves lists the moves open to a snake heading h, reversing
// excluded: straight, left, right.
func relativeMoves(h types.Direction) []types.Direction {
	if h == types.None {
		return types.Directions[:]
	}
	return []types.Direction{h, h.TurnLeft(), h.TurnRight()}
}

// distanceAfter is the food distance once the head has moved along d. A
// step towards the food on either axis closes the gap by one, any other
// step widens it by one.
func distanceAfter(s State, d types.Direction) int {
	v := d.ToPoint()
	if (v.X != 0 && v.X == s.RelativeFoodDir[0]) || (v.Y != 0 && v.Y == s.RelativeFoodDir[1]) {
		return s.FoodDistance - 1
	}
	return s.FoodDistance + 1
}

func dangerIndex(d types.Direction) int {
	for i, dir := range types.Directions {
		if dir == d {
			return i
		}
	}
	return 0
}
