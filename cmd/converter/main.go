package main

import (
	"os"

	"CurrencyConverter/cmd/converter/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
