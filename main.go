package main

import (
	"os"

	"github.com/trackslat/trackslat/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
