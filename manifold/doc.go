// Package manifold traces a tachyon beam down a manifold of splitters.
//
// The beam enters below 'S' on the first line and falls straight down. On a
// splitter ('^') the beam stops and continues from the cells left and right
// of it. Beams in the same cell merge, but the timelines that led to them
// add up: Run reports both the number of splits and the number of distinct
// timelines reaching the bottom.
//
// Splitters in one row act in left-to-right order on the beams of that row,
// so a beam pushed right onto the next splitter is split again.
package manifold
