package main

import "github.com/mouse-blink/dbgc/cmd"

func main() {
	cmd.Execute()
}
