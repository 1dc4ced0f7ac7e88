package main

import "kle-placer/internal/cli"

func main() {
	cli.Execute()
}
