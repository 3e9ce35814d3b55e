package main

import (
	"os"

	"github.com/petigura/ariel-kpf/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
