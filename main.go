package main

import "github.com/InternatManhole/route-catalog/cmd"

// main is the entry point for the routes tool. It initializes and executes the root command.
func main() {
	cmd.Execute()
}
