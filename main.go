package main

import "github.com/calyptra/aleamidi/cmd"

func main() {
	cmd.Execute()
}
