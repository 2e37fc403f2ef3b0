package main

import (
	"os"

	"nip44/cmd/nip44/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
