package main

import "github.com/pittengermdp/advent-of-code/internal/cli"

func main() {
	cli.Execute()
}
