package main

import (
	"fmt"
	"os"

	"taskflow/cmd/taskflow/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
