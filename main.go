package main

import "github.com/strangelove-ventures/omnichain-graph/cmd"

func main() {
	cmd.Execute()
}
