// Package worksheet solves cephalopod math homework.
//
// A worksheet is a block of number rows over one operator row ('+' or '*').
// Read by rows, each problem is a column of whitespace-separated numbers
// (ParseRows). Read the cephalopod way, each character column is one number,
// written top to bottom, and problems are separated by blank columns
// (ParseColumns). The grand total is the sum of every problem's result.
package worksheet
