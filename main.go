package main

import (
	"os"

	"github.com/ingostrakh/insurehub/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
