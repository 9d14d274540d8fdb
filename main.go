package main

import (
	"fmt"
	"os"

	"github.com/ford442/supertonic-TTS/presentation/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
