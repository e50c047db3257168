package main

import "github.com/soli0222/guessing-game/internal/cli"

func main() {
	cli.Execute()
}
