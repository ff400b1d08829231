// Package main is the entry point of tptester.
package main

import "github.com/mouse-blink/tptester/cmd"

func main() {
	cmd.Execute()
}
