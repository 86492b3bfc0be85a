package main

import (
	"os"

	"github.com/GriffinCanCode/WebDesk/backend/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
