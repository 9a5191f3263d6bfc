package main

import (
	"os"

	"github.com/Harish8848/MyPortfolio/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
