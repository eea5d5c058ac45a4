package entity

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"github.com/alexanderi96/snake/game/types"
)

// ErrNoFreeCell is returned when every cell of the board is occupied.
var ErrNoFreeCell = errors.New("no free cell left on the board")

// Food is the single pellet on the board.
type Food struct {
	grid     types.Grid
	rng      *rand.Rand
	position types.Point
}

// NewFood places a pellet on a free cell of grid. seed drives the pellet's
// random source so a run can be replayed.
func NewFood(grid types.Grid, seed uint64, occupied []types.Point) (*Food, error) {
	f := &Food{
		grid: grid,
		rng:  rand.New(rand.NewSource(seed)),
	}
	if err := f.Regenerate(occupied); err != nil {
		return nil, errors.Wrap(err, "placing first food")
	}
	return f, nil
}

func (f *Food) Position() types.Point {
	return f.position
}

// Regenerate moves the pellet to a uniformly random cell not in occupied.
// Rejection sampling is tried first and bounded by the board size; past that
// the free cells are listed and one of them is drawn. The position is left
// unchanged when the board is full.
func (f *Food) Regenerate(occupied []types.Point) error {
	for i := 0; i < f.grid.Cells(); i++ {
		p := f.randomCell()
		if !contains(occupied, p) {
			f.position = p
			return nil
		}
	}

	free := f.freeCells(occupied)
	if len(free) == 0 {
		return ErrNoFreeCell
	}
	f.position = free[f.rng.Intn(len(free))]
	return nil
}

func (f *Food) randomCell() types.Point {
	return types.Point{
		X: f.rng.Intn(f.grid.Width),
		Y: f.rng.Intn(f.grid.Height),
	}
}

func (f *Food) freeCells(occupied []types.Point) []types.Point {
	taken := make(map[types.Point]struct{}, len(occupied))
	for _, p := range occupied {
		taken[p] = struct{}{}
	}

	var free []types.Point
	for y := 0; y < f.grid.Height; y++ {
		for x := 0; x < f.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if _, ok := taken[p]; !ok {
				free = append(free, p)
			}
		}
	}
	return free
}

func contains(points []types.Point, p types.Point) bool {
	for _, q := range points {
		if q == p {
			return true
		}
	}
	return false
}
