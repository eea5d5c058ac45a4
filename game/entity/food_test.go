package entity

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/alexanderi96/snake/game/types"
)

func TestRegenerateAvoidsOccupied(t *testing.T) {
	grid := types.NewGrid(25)
	occupied := NewSnake().Body()

	f, err := NewFood(grid, 1, occupied)
	if err != nil {
		t.Fatalf("NewFood: %v", err)
	}
	for i := 0; i < 1000; i++ {
		if err := f.Regenerate(occupied); err != nil {
			t.Fatalf("Regenerate: %v", err)
		}
		p := f.Position()
		if !grid.Contains(p) {
			t.Fatalf("food %v outside the board", p)
		}
		if contains(occupied, p) {
			t.Fatalf("food %v on the snake", p)
		}
	}
}

func TestRegenerateFindsLastFreeCell(t *testing.T) {
	grid := types.NewGrid(4)
	var occupied []types.Point
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if x == 2 && y == 3 {
				continue
			}
			occupied = append(occupied, types.Point{X: x, Y: y})
		}
	}

	f, err := NewFood(grid, 7, occupied)
	if err != nil {
		t.Fatalf("NewFood: %v", err)
	}
	if f.Position() != (types.Point{X: 2, Y: 3}) {
		t.Errorf("food = %v, want the only free cell (2,3)", f.Position())
	}
}

func TestRegenerateFullBoard(t *testing.T) {
	grid := types.NewGrid(2)
	f, err := NewFood(grid, 3, nil)
	if err != nil {
		t.Fatalf("NewFood: %v", err)
	}
	before := f.Position()

	full := []types.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}
	err = f.Regenerate(full)
	if !errors.Is(err, ErrNoFreeCell) {
		t.Fatalf("err = %v, want ErrNoFreeCell", err)
	}
	if f.Position() != before {
		t.Errorf("position moved to %v on a full board", f.Position())
	}
}

func TestRegenerateIgnoresOffBoardPoints(t *testing.T) {
	grid := types.NewGrid(3)
	occupied := []types.Point{{X: -1, Y: 0}, {X: 3, Y: 1}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}}

	f, err := NewFood(grid, 11, occupied)
	if err != nil {
		t.Fatalf("NewFood: %v", err)
	}
	if f.Position() != (types.Point{X: 2, Y: 2}) {
		t.Errorf("food = %v, want (2,2)", f.Position())
	}
}

func TestSameSeedSameSequence(t *testing.T) {
	grid := types.NewGrid(25)
	a, _ := NewFood(grid, 42, nil)
	b, _ := NewFood(grid, 42, nil)

	for i := 0; i < 20; i++ {
		if a.Position() != b.Position() {
			t.Fatalf("step %d: %v != %v", i, a.Position(), b.Position())
		}
		a.Regenerate(nil)
		b.Regenerate(nil)
	}
}
