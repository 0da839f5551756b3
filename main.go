package main

import "mimic_go/cmd"

func main() {
	cmd.Execute() // initialize cobra commands
}
