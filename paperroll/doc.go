// Package paperroll finds paper rolls a forklift can reach on a floor plan.
//
// A roll ('@') is accessible when fewer than four of its eight neighbors
// hold rolls. Removing every accessible roll may expose more; CleanUp
// repeats simultaneous removal rounds until nothing is accessible.
//
// The floor is a gridgraph.GridGraph with 8-connectivity, 1 for a roll and
// 0 for empty floor.
package paperroll
