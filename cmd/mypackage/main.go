package main

import (
	"os"

	"github.com/pengelbrecht/mypackage/cmd/mypackage/cmd"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	return cmd.Run(args[1:])
}
