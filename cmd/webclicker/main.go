package main

import (
	"os"

	"github.com/bnema/webclicker/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
