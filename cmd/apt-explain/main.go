package main

import (
	"fmt"
	"os"

	"github.com/masashitakano917-maker/apt-explain-sub000/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
