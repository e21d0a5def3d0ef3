package main

import "github.com/itsmostafa/cornerstones/cmd"

func main() {
	cmd.Execute()
}
