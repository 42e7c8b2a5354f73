package main

import "vwire/cmd/vwire/cmd"

func main() {
	cmd.Execute()
}
