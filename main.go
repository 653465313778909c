package main

import (
	"os"

	"github.com/solrlab/solrqstat/cmd"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
