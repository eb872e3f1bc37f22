package main

import (
	"os"

	"github.com/GriffinCanCode/numbertheory/cmd/ntp/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
