package main

import (
	"os"

	"github.com/gdennie/create-rx-app/internal/cli"
	"github.com/gdennie/create-rx-app/internal/ui"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		ui.Error("%v", err)
		os.Exit(1)
	}
}
