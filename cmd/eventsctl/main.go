// Package main is the entry point for the eventsctl binary.
package main

import (
	"os"

	cli "aquaevents/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
