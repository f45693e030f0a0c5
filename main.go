package main

import "hermes/cmd"

func main() {
	cmd.Execute()
}
