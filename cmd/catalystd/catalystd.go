package main

import (
	"os"

	"github.com/openearth/catalyst/internal/catalystd"
)

func main() {
	if err := catalystd.NewCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
