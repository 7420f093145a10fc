package main

import (
	"os"

	"github.com/rawbytedev/u16view/cmd/u16view/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
