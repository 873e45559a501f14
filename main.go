package main

import "github.com/jsphweid/chordtone/cmd"

func main() {
	cmd.Execute()
}
