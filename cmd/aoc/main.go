// aoc - Advent of Code 2022 solvers for rock paper scissors scoring and
// datastream marker detection.
package main

import (
	"github.com/SeamusWaldron/aoc2022/internal/cli"
)

func main() {
	cli.Execute()
}
