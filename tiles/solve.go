package tiles

import (
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/aoc2025/puzzle"
)

// Solve finds the largest rectangle of any two red tiles, then the largest
// one made only of red and green tiles.
func Solve(text string, _ puzzle.Config) ([]puzzle.Answer, error) {
	tiles, err := ParseTiles(text)
	if err != nil {
		return nil, err
	}
	klog.V(1).Infof("tiles: parsed %d red tiles", len(tiles))

	largest, err := LargestArea(tiles)
	if err != nil {
		return nil, err
	}
	poly, err := NewPolygon(tiles)
	if err != nil {
		return nil, err
	}
	green, err := poly.LargestEnclosedArea()
	if err != nil {
		return nil, err
	}
	klog.V(2).Infof("tiles: largest enclosed rectangle %s to %s", green.A, green.B)

	return []puzzle.Answer{
		{Part: 1, Label: "Largest area", Value: largest.Area()},
		{Part: 2, Label: "Largest green area", Value: green.Area()},
	}, nil
}
