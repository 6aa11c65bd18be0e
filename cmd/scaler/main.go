package main

import "github.com/rustyeddy/scaler/internal/cli"

func main() {
	cli.Execute()
}
