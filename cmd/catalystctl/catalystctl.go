package main

import (
	"os"

	"github.com/openearth/catalyst/internal/catalystctl/cmd"
)

func main() {
	if err := cmd.NewCatalystCtlCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
