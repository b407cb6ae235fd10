// main holds the entry logic for the orgpulse CLI.
package main

import (
	"os"

	"github.com/huangsam/orgpulse/cmd"
	"github.com/huangsam/orgpulse/internal/contract"
	"github.com/huangsam/orgpulse/internal/iostore"
)

// main wires the global store manager and runs the root command.
func main() {
	cmd.SetStoreManager(iostore.Manager)

	err := cmd.Execute()

	if closeErr := iostore.Manager.CloseStores(); closeErr != nil {
		contract.LogWarn("Failed to close stores", closeErr)
	}

	if err != nil {
		contract.LogWarn("Command failed", err)
		os.Exit(1)
	}
}
