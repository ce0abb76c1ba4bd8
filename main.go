package main

import "costshift/cmd"

func main() {
	cmd.Execute()
}
