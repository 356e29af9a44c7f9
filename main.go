package main

import (
	"os"

	"github.com/arvidh/docread/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
