// Package main is the entry point for the lolmetrics CLI tool, which loads
// LoL esports match exports and computes player/champion/team metrics.
package main

import "github.com/pable/go-lol-metrics/cmd"

func main() {
	cmd.Execute()
}
