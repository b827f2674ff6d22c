package main

import (
	"os"

	"easyrent-server/cmd/easyrentctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
