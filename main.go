package main

import "tprint/internal/cli"

func main() {
	cli.Execute()
}
