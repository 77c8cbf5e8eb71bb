package main

import (
	"os"

	"github.com/deadpool-frc/autodup/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
