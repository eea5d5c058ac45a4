package game

import (
	"log"

	"github.com/pkg/errors"

	"github.com/alexanderi96/snake/game/entity"
	"github.com/alexanderi96/snake/game/manager"
	"github.com/alexanderi96/snake/game/types"
)

// Canvas receives the draw calls issued by Game.Draw.
type Canvas interface {
	DrawFood(p types.Point)
	DrawSegment(p types.Point, index int)
}

type Game struct {
	Grid         types.Grid
	snake        *entity.Snake
	food         *entity.Food
	collisionMgr *manager.CollisionManager
	stateMgr     *manager.StateManager
	logger       *log.Logger
}

// NewGame builds a running game on a cellCount × cellCount board. seed feeds
// the food placement. A nil logger means the standard logger.
func NewGame(cellCount int, seed uint64, logger *log.Logger) (*Game, error) {
	if cellCount < types.MinCellCount {
		return nil, errors.Errorf("board of %d cells is smaller than the minimum %d", cellCount, types.MinCellCount)
	}
	grid := types.NewGrid(cellCount)
	snake := entity.NewSnake()

	food, err := entity.NewFood(grid, seed, snake.Body())
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}

	return &Game{
		Grid:         grid,
		snake:        snake,
		food:         food,
		collisionMgr: manager.NewCollisionManager(grid),
		stateMgr:     manager.NewStateManager(logger),
		logger:       logger,
	}, nil
}

// Update advances the game by one tick. Nothing happens while stopped.
func (g *Game) Update() {
	if !g.stateMgr.Running() {
		return
	}
	g.stateMgr.Tick()

	g.snake.Advance()

	if g.snake.Head() == g.food.Position() {
		if err := g.food.Regenerate(g.snake.Body()); err != nil {
			g.logger.Printf("no room for food: %v", err)
			g.gameOver(manager.BoardFull)
			return
		}
		g.snake.RequestGrowth()
		g.stateMgr.AddPoint()
	}

	if collision := g.collisionMgr.CheckCollision(g.snake); collision != manager.NoCollision {
		g.gameOver(collision)
	}
}

// gameOver resets the board for the next round and halts play until the
// next direction input.
func (g *Game) gameOver(cause manager.CollisionType) {
	g.snake.Reset()
	if err := g.food.Regenerate(g.snake.Body()); err != nil {
		// A reset snake covers three cells of a board of at least a hundred.
		panic(errors.Wrap(err, "placing food after reset"))
	}
	g.stateMgr.Stop(cause)
}

// Steer is the controller entry point for direction changes. A direction
// that reverses the current one, or the one the snake last moved in, is
// rejected. Any accepted direction resumes a stopped game.
func (g *Game) Steer(d types.Direction) bool {
	if d == types.None {
		return false
	}
	if d == g.snake.Direction().Opposite() || d == g.snake.Heading().Opposite() {
		return false
	}
	g.snake.SetDirection(d)
	g.stateMgr.Start()
	return true
}

// Draw issues draw calls for the food, then the snake from head to tail, so
// the snake is painted over the food.
func (g *Game) Draw(c Canvas) {
	c.DrawFood(g.food.Position())
	for i, p := range g.snake.Body() {
		c.DrawSegment(p, i)
	}
}

func (g *Game) Snake() *entity.Snake {
	return g.snake
}

func (g *Game) Food() *entity.Food {
	return g.food
}

func (g *Game) CollisionManager() *manager.CollisionManager {
	return g.collisionMgr
}

func (g *Game) State() manager.State {
	return g.stateMgr.State()
}

func (g *Game) Running() bool {
	return g.stateMgr.Running()
}

func (g *Game) Score() int {
	return g.stateMgr.Score()
}

// BestScore is the highest score reached since the process started.
func (g *Game) BestScore() int {
	return g.stateMgr.BestScore()
}

// Round is the number of the round in progress, starting at 1.
func (g *Game) Round() int {
	return g.stateMgr.Rounds() + 1
}

func (g *Game) LastRound() manager.RoundSummary {
	return g.stateMgr.LastRound()
}
