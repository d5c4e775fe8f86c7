package main

import (
	"os"

	"prepscore/internal/cli"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	cli.SetVersionInfo(version, commit)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
