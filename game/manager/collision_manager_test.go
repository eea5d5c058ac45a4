package manager

import (
	"testing"

	"github.com/alexanderi96/snake/game/entity"
	"github.com/alexanderi96/snake/game/types"
)

func placed(body []types.Point, d types.Direction) *entity.Snake {
	s := entity.NewSnake()
	s.Place(body, d)
	return s
}

func TestCheckCollision(t *testing.T) {
	cm := NewCollisionManager(types.NewGrid(25))

	tests := []struct {
		name string
		body []types.Point
		want CollisionType
	}{
		{"inside", []types.Point{{X: 6, Y: 9}, {X: 5, Y: 9}, {X: 4, Y: 9}}, NoCollision},
		{"right wall", []types.Point{{X: 25, Y: 9}, {X: 24, Y: 9}}, WallCollision},
		{"left wall", []types.Point{{X: -1, Y: 9}, {X: 0, Y: 9}}, WallCollision},
		{"top wall", []types.Point{{X: 3, Y: -1}, {X: 3, Y: 0}}, WallCollision},
		{"bottom wall", []types.Point{{X: 3, Y: 25}, {X: 3, Y: 24}}, WallCollision},
		{"self", []types.Point{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 5}, {X: 5, Y: 5}}, SelfCollision},
		{"single segment", []types.Point{{X: 0, Y: 0}}, NoCollision},
		{"wall wins over self", []types.Point{{X: 25, Y: 0}, {X: 25, Y: 0}}, WallCollision},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cm.CheckCollision(placed(tt.body, types.Right)); got != tt.want {
				t.Errorf("CheckCollision() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsDanger(t *testing.T) {
	cm := NewCollisionManager(types.NewGrid(10))
	s := placed([]types.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 4, Y: 6}, {X: 5, Y: 6}}, types.Right)

	if !cm.IsDanger(types.Point{X: 4, Y: 5}, s) {
		t.Error("neck should be dangerous")
	}
	if cm.IsDanger(types.Point{X: 5, Y: 6}, s) {
		t.Error("tail moves away and should be safe")
	}
	if !cm.IsDanger(types.Point{X: 10, Y: 5}, s) {
		t.Error("off the board should be dangerous")
	}
	if cm.IsDanger(types.Point{X: 6, Y: 5}, s) {
		t.Error("empty cell should be safe")
	}

	s.RequestGrowth()
	if !cm.IsDanger(types.Point{X: 5, Y: 6}, s) {
		t.Error("tail stays while growing and should be dangerous")
	}
}
