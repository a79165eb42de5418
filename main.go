package main

import (
	"os"

	"github.com/connascencechecker/connascence-checker/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
