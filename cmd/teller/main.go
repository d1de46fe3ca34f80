package main

import (
	"os"

	"github.com/rustyeddy/teller/cmd/teller/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
