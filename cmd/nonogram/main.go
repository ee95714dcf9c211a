// Command nonogram solves, validates and renders nonogram puzzles read
// from native, NIN or NON format files, grounded on the original
// project's picross_solver_cli (src/cli/src/main.cpp).
package main

func main() {
	Execute()
}
