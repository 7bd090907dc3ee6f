package geo

import (
	"fmt"
	"math"
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p1 Point) Equals(p2 Point) bool {
	return (p1.X == p2.X) && (p1.Y == p2.Y)
}

func (p1 Point) DistanceTo(p2 Point) float64 {
	return EuclideanDistance(p1.X, p1.Y, p2.X, p2.Y)
}

func (p Point) Translate(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Round snaps p to the pixel grid.
func (p Point) Round() Point {
	return Point{X: math.Round(p.X), Y: math.Round(p.Y)}
}

func (p Point) ToString() string {
	return fmt.Sprintf("(%v, %v)", TruncateDecimals(p.X), TruncateDecimals(p.Y))
}
