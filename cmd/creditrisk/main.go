package main

import (
	"os"

	"github.com/wonny/creditrisk/cmd/creditrisk/commands"
)

// main is the entry point for the creditrisk CLI
// ⭐ 통합 CLI 진입점: go run ./cmd/creditrisk [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
