// Package main is the entry point for the tasklist CLI.
package main

import "github.com/basecamp/tasklist/internal/cli"

func main() {
	cli.Execute()
}
