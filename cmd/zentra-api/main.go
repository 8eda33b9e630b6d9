package main

import "github.com/achronus/zentra-api/internal/cli"

func main() {
	cli.Execute()
}
