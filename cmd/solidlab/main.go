package main

import "github.com/aalvaropc/solidlab/internal/cli"

func main() {
	cli.Execute()
}
