// Package main is the entry point for the vitrina CLI application.
package main

import (
	"github.com/dbmrq/vitrina/cmd/vitrina/cmd"
)

// Version information - set by build flags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd.Version = version
	cmd.Commit = commit
	cmd.Date = date
	cmd.Execute()
}
