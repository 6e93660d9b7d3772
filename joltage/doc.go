// Package joltage picks batteries from banks to maximize output joltage.
//
// A bank is a row of single-digit batteries. Turning on exactly k of them
// yields the k-digit number their digits form, in bank order. MaxJoltage
// finds the largest such number greedily: each digit is the leftmost
// maximum of the window that still leaves room for the remaining digits.
//
// Complexity: O(n·k) per bank.
package joltage
