package main

import (
	"fmt"
	"os"

	"github.com/conneroisu/wordmetrics/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cmd.FailureMessage(err))
		os.Exit(1)
	}
}
