package main

import (
	"os"

	"github.com/staffsight/staffsight/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
