package main

import "github.com/LeJamon/goXRPLwasm/internal/cli"

func main() {
	cli.Execute()
}
