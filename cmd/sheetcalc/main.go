package main

import (
	"fmt"
	"os"

	"github.com/vogtb/sheetcalc/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "sheetcalc: %v\n", err)
		os.Exit(1)
	}
}
