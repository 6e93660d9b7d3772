package tiles_test

import (
	"github.com/katalvlaran/aoc2025/tiles"
)

const sample = `7,1
11,1
11,7
9,7
9,5
2,5
2,3
7,3
`

var sampleTiles = []tiles.Point{
	{X: 7, Y: 1}, {X: 11, Y: 1}, {X: 11, Y: 7}, {X: 9, Y: 7},
	{X: 9, Y: 5}, {X: 2, Y: 5}, {X: 2, Y: 3}, {X: 7, Y: 3},
}

// sampleMap marks with '#' or 'X' every tile on or inside the sample loop.
var sampleMap = []string{
	"..............",
	".......#XXX#..",
	".......XXXXX..",
	"..#XXXX#XXXX..",
	"..XXXXXXXXXX..",
	"..#XXXXXX#XX..",
	".........XXX..",
	".........#X#..",
	"..............",
}

// notchedTiles is a loop with notches, holes in its bounding box and
// neighbouring parallel edges.
var notchedTiles = []tiles.Point{
	{X: 3, Y: 2}, {X: 8, Y: 2}, {X: 8, Y: 4}, {X: 12, Y: 4},
	{X: 12, Y: 2}, {X: 18, Y: 2}, {X: 18, Y: 6}, {X: 7, Y: 6},
	{X: 7, Y: 8}, {X: 18, Y: 8}, {X: 18, Y: 12}, {X: 14, Y: 12},
	{X: 14, Y: 14}, {X: 10, Y: 14}, {X: 10, Y: 10}, {X: 6, Y: 10},
	{X: 6, Y: 14}, {X: 2, Y: 14}, {X: 2, Y: 10}, {X: 4, Y: 10},
	{X: 4, Y: 8}, {X: 2, Y: 8}, {X: 2, Y: 4}, {X: 3, Y: 4},
}

var notchedMap = []string{
	".....................",
	".....................",
	"...#XXXX#...#XXXXX#..",
	"...XXXXXX...XXXXXXX..",
	"..##XXXX#XXX#XXXXXX..",
	"..XXXXXXXXXXXXXXXXX..",
	"..XXXXX#XXXXXXXXXX#..",
	"..XXXXXX.............",
	"..#X#XX#XXXXXXXXXX#..",
	"....XXXXXXXXXXXXXXX..",
	"..#X#X#XXX#XXXXXXXX..",
	"..XXXXX...XXXXXXXXX..",
	"..XXXXX...XXXX#XXX#..",
	"..XXXXX...XXXXX......",
	"..#XXX#...#XXX#......",
	".....................",
}
