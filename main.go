package main

import "github.com/mouse-blink/versecheck/cmd"

func main() {
	cmd.Execute()
}
