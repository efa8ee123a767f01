package main

import (
	"os"

	"github.com/Fouss011/ayii-ratp/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
