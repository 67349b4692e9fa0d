package main

import "github.com/notargets/gomsh/cmd"

func main() {
	cmd.Execute()
}
