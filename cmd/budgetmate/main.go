package main

import (
	"os"

	"github.com/budget-mate/budgetmate/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
