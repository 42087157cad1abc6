package main

import "se2patch/cmd"

func main() {
	cmd.Execute()
}
