package main

import (
	"fmt"

	"github.com/zeu5/tabular-rl/cmd"
)

// main entry point to the gridworld experiments
func main() {
	rootCommand := cmd.RootCommand()
	if err := rootCommand.Execute(); err != nil {
		fmt.Println(err)
	}
}
