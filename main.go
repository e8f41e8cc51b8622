package main

import (
	"os"

	"github.com/varunsridharan/quizdeck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
