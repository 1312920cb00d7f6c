package main

import "contagion/internal/cli"

func main() {
	cli.Execute()
}
